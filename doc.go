/*
Package redblack makes the insertion rebalancing of red-black trees
replayable step by step.

A Session binds a live tree (package rbtree) to a History of insertion
records. Every inserted key appends one record holding a frozen copy of the
tree after the insertion, the labels of the corrective actions which were
applied ("Step 1: Case 2", "Step 2: Case 3") and, for insertions needing more
than a single action, the intermediate trees after each action.

Clients move a cursor through the history and query the tree at the cursor:

	s := redblack.NewSession()
	s.ResetWithKeys([]int{10, 20, 15})
	s.RetreatStep()
	fmt.Println(s.CurrentSnapshot())    // 10B(_ 20R)
	s.AdvanceStep()
	fmt.Println(s.CurrentCaseLabels())  // [Step 1: Case 2 Step 2: Case 3]

Insertions with two or more frames support a drill-down: a secondary cursor
walks the frames of the record at the outer cursor.

Drawing the trees is left to clients. The package offers a Graphviz DOT export
for debugging, sub-package console prints trees to terminals, and command
rbsteps is a small terminal front end.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package redblack

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
