// Package utils holds small conversion helpers shared by the decoders and the
// database source.
package utils
