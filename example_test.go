// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package avltree_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/ajwerner/avltree"
)

func ExampleTree() {
	t := avltree.New(strings.Compare)
	t.Insert("foo")
	t.Insert("bar")
	t.Insert("baz")
	fmt.Println(t.Contains("foo"))
	fmt.Println(t.Search("qux") == nil)
	it := t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Cur())
	}

	// Output:
	// true
	// true
	// bar
	// baz
	// foo
}

func ExampleTree_PrintInOrder() {
	t := avltree.NewOrdered[int]()
	_ = t.PrintInOrder(os.Stdout)
	for _, k := range []int{33, 13, 11, 53, 61, 21, 8, 9} {
		t.Insert(k)
	}
	for _, k := range []int{13, 11, 53, 61} {
		t.Delete(k)
	}
	_ = t.PrintInOrder(os.Stdout)
	_ = t.PrintPreOrder(os.Stdout)

	// Output:
	// None
	// 8
	// 9
	// 21
	// 33
	// 9
	// 8
	// 33
	// 21
}

func ExampleTree_Print() {
	t := avltree.NewOrdered[int]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		t.Insert(k)
	}
	depth, _ := t.Print(os.Stdout)
	fmt.Println("depth:", depth)

	// Output:
	//               /------+ 7 h=1 +0
	//        /------+ 6 h=2 +0
	//        |      \------+ 5 h=1 +0
	// |------+ 4 h=3 +0
	//        |      /------+ 3 h=1 +0
	//        \------+ 2 h=2 +0
	//               \------+ 1 h=1 +0
	// depth: 3
}
