// Copyright 2025 The arc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command libl2math builds the l2math kernel as a C library:
//
//	go build -buildmode=c-shared -o libl2math.so ./cmd/libl2math
//	go build -buildmode=c-archive -o libl2math.a ./cmd/libl2math
//
// The exported symbols are declared in include/l2math.h. Both that header and
// exports.gen.go are generated from exports.yaml.
package main

//go:generate go run ../l2mathgen -manifest exports.yaml -pkgdir ../../l2math -go-out exports.gen.go -header-out ../../include/l2math.h

import "C"

func main() {}
