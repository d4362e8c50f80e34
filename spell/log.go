// Copyright 2026 The Spellkern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spell

import "github.com/golang/glog"

// Unlike the teacher's log.go, this package never calls os.Exit or
// otherwise terminates the process — it is a library, and construction
// errors are returned to the caller per §7. Only cmd/spellcheck owns
// the process lifetime.

func logTolerated(format string, args ...interface{}) {
	glog.V(1).Infof(format, args...)
}

func logUnknownDirective(pos srcpos, directive string) {
	glog.V(1).Infof("%s: unknown directive %q recorded as a setting", pos, directive)
}

func logTrace(format string, args ...interface{}) {
	glog.V(3).Infof(format, args...)
}

func logRecursionCapped(pos srcpos, flag flagToken, depth int) {
	glog.Warningf("%s: continuation class %q exceeded recursion depth %d, truncating", pos, flag, depth)
}
