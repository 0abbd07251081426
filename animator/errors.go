/*
Copyright The Swim Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package animator

import "errors"

// ErrInvalidConfiguration is returned when an animator or decorator is
// constructed with settings it cannot animate, such as an empty frame set.
// It indicates a programming error and is never retried.
var ErrInvalidConfiguration = errors.New("invalid configuration")
