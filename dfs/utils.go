// Package dfs provides the helpers used by cycle enumeration to normalise a
// cycle into a rotation- and reflection-independent signature.
package dfs

import (
	"strconv"
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// RotateToMin returns a new slice holding s rotated so that its smallest
// element comes first. An empty input yields an empty slice.
// Time Complexity: O(n).
func RotateToMin(s []int) []int {
	out := make([]int, 0, len(s))
	if len(s) == 0 {
		return out
	}
	lowest := s[0]
	for _, v := range s[1:] {
		if v < lowest {
			lowest = v
		}
	}
	idx := IndexOf(s, lowest)
	out = append(out, s[idx:]...)
	out = append(out, s[:idx]...)

	return out
}

// JoinSig concatenates the elements of c with commas, producing a single string signature.
// Time Complexity: O(n).
func JoinSig(c []int) string {
	var sb strings.Builder
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// CanonicalKey returns the deduplication key of an open cycle (no repeated
// closing vertex). Both the forward order and the reversed order are rotated
// to their minimum vertex and stringified; the lexicographically smaller
// string wins. Rotations and reflections of one cycle share a key.
// Time Complexity: O(n).
func CanonicalKey(cycle []int) string {
	forward := JoinSig(RotateToMin(cycle))
	reversed := JoinSig(RotateToMin(Reverse(cycle)))
	if reversed < forward {
		return reversed
	}

	return forward
}
