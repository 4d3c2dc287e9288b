// Package cnp encodes and decodes Romanian personal numeric codes (CNP).
//
// A CNP is 13 ASCII digits:
//
//	S YY MM DD RR NNN C
//
// S is the gender/century code, YYMMDD the birth date within that century,
// RR the region (county or Bucharest sector) code, NNN a serial in 001-999 and
// C a weighted mod-11 check digit over the first twelve digits.
//
// Generator builds identifiers from optional inputs, filling the gaps from an
// injectable random source. Parse is the trust-boundary decoder: every failure
// is reported as dErrors.CodeInvalidIdentifier, with the specific reason kept
// on the wrapped *ParseError for logs.
package cnp
