// Package sanitizer normalizes user input before validation and storage.
//
// All functions are idempotent. They never fail: input that cannot be
// normalized is returned trimmed so that validation can report it.
//
// Normalization includes:
//   - Phone numbers: E.164 (+[country][number]), Spanish numbers assumed when no prefix is given
//   - Emails: trimmed and lowercased
//   - URLs: HTTPS enforced, lowercase host, path kept
//   - Strings: whitespace collapsed and trimmed
//   - Slices: duplicates and empty values removed after normalization
package sanitizer
