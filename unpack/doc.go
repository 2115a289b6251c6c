// Package unpack collects sequence destructuring recipes.
//
// Go destructures fixed shapes natively — multiple assignment covers
// pairs coming out of function returns — but slices arrive with a length
// only the data knows. These helpers make the expected shape explicit and
// turn a mismatch into an error instead of an index panic:
//
//	name, shares, price, err := unpack.Three(fields)
//
// Exact-arity helpers (Two, Three, Four) fail with ErrTooFewValues or
// ErrTooManyValues when the count is wrong; that failure is the point of
// the recipe as much as the success path.
//
// Head and Last split off one end and keep the rest, the slice analog of
// star-unpacking a first or trailing element. At picks arbitrary
// positions and discards everything else.
package unpack
