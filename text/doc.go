// Package text guesses the OCR language of a document from the scripts its
// text uses.
//
// [DetectLanguage] checks for Devanagari, then Japanese kana and CJK
// ideographs, and otherwise assumes English. The result carries the
// Tesseract model code and the matching BCP 47 tags:
//
//	lang := text.DetectLanguage(sample)
//	fmt.Println(lang.Code) // "hin+mar", "jpn" or "eng"
//
// [ParseLanguage] accepts either form, for configuration values.
package text
