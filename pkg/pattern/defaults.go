// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package pattern

// DefaultMask returns the integer with a bit set at every fixed (literal 0 or
// 1) position of the pattern.
func DefaultMask(p *Pattern) uint64 {
	var mask uint64
	//
	for i := range p.Len() {
		if p.IsLiteral(i) {
			mask |= uint64(1) << (p.Len() - 1 - i)
		}
	}
	//
	return mask
}

// DefaultValue returns the integer with a bit set at every literal 1 position
// of the pattern.  All other bits, including those of tokens, are zero.
func DefaultValue(p *Pattern) uint64 {
	var value uint64
	//
	for i := range p.Len() {
		if p.canonical[i] == '1' {
			value |= uint64(1) << (p.Len() - 1 - i)
		}
	}
	//
	return value
}
