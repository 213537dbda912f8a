//nolint:iterbox
package a

var ignored Iterable[int] = Slice{}
