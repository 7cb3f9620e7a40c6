package util

import (
	"iter"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

func MapIter[A, B any](iter iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range iter {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func Reverse[A any](slice []A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := len(slice) - 1; i >= 0; i-- {
			if !yield(slice[i]) {
				return
			}
		}
	}
}

func SetFromSeq[V comparable](s iter.Seq[V], size int) *set.Set[V] {
	newSet := set.New[V](size)
	for item := range s {
		newSet.Insert(item)
	}
	return newSet
}

// JoinString renders every element of s with f and joins the results with sep
func JoinString[A any](s []A, sep string, f func(A) string) string {
	b := strings.Builder{}
	for i, elem := range s {
		if i != 0 {
			b.WriteString(sep)
		}
		b.WriteString(f(elem))
	}
	return b.String()
}
