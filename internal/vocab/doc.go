// Package vocab loads, trims and persists the per-language vocabulary lists.
// A dataset is a CSV file with a pivot column (English) and one column per
// target language. The remaining-words file shrinks as words are marked known;
// the full word list seeds it on first use.
package vocab
