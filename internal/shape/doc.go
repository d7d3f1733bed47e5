// Package shape resolves untagged unions by structural matching.
//
// Each candidate shape is a CUE definition (see shapes.cue). Callers pass the
// candidates in their declared order and the first definition that the value
// unifies with wins. Object shapes are open, so keys outside a shape are
// ignored and only its required fields decide the match. Trial order is the
// tie-break when a value fits more than one shape, except that a value with
// both title and url is never a certification.
package shape
