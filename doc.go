// Package lvtensor is a generic, dense, rank-N tensor engine for Go in which
// every axis shares one dimension.
//
// What is lvtensor?
//
//	A small library built around a single idea: a flat buffer of
//	dimension^rank elements plus a mixed-radix codec that turns multi-indices
//	into offsets and back. Structural transforms are written against the
//	codec, so they work for any rank up to 64 and any numeric element type.
//		• Construction & access: New, NewZeros, Clone, At/Set/Ptr with optional range checks
//		• Transforms: SwapAxes, Contract, OuterProduct, Extrema
//		• Arithmetic: Add, Sub, MulElements, DivElements, Scale, AddConstant, AddDiagonal
//		• Views: rank-1/rank-2 tensors as gonum vectors and matrices, no copy
//		• Serialization: binary, text and half-precision codecs
//
// Under the hood, everything is organized under three subpackages:
//
//	radix/    : fixed-capacity digit tuples and the mixed-radix codec
//	tensor/   : the Tensor type, transforms, arithmetic, views, concurrency helpers
//	tensorio/ : stream codecs for a tensor's element buffer
//
// Quick example:
//
//	t, _ := tensor.New[float64](3, 2)   // 2×2×2
//	r, _ := tensor.Contract(t, 0, 2)    // r[j] = Σ_k t[k,j,k]
//
//	go get github.com/katalvlaran/lvtensor
package lvtensor
