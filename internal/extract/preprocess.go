package extract

import (
	"regexp"
	"strings"
)

var (
	lineBreakRe = regexp.MustCompile(`\s*\n\s*`)
	mislabelRe  = regexp.MustCompile(`(?i)giới tinh`)

	// Caption followed by address lines the OCR split across line breaks.
	// Continuation lines are whole colon-free lines (anchored with $), so the
	// rejoin stops at the next labeled field instead of swallowing its label.
	originRe    = regexp.MustCompile(`(?im)(Quê quán|Place of origin)\s*[:\-]?\s*\n([^:\n]+$(?:\n[^:\n]+$)*)`)
	residenceRe = regexp.MustCompile(`(?im)(Nơi thường trú|Place of residence)\s*[:\-]?\s*\n([^:\n]+$(?:\n[^:\n]+$)*)`)

	// National-emblem header block; carries no field data.
	boilerplateRe = regexp.MustCompile(`(?is)CỘNG HÒA XÃ HỘI CHỦ NGHĨA VIỆT NAM\n.*?\nSOCIALIST REPUBLIC OF VIET NAM\n.*?\nCĂN CƯỚC CÔNG DÂN\n.*?\nCitizen Identity Card`)
)

// PreprocessIdentityText cleans raw OCR output from an identity card before
// prompt building: normalizes line breaks, fixes the recurring "Giới tinh"
// misread, rejoins addresses the OCR split across lines, and strips the
// national-emblem boilerplate. Absence of any pattern leaves the text
// unchanged at that step.
func PreprocessIdentityText(text string) string {
	text = lineBreakRe.ReplaceAllString(strings.TrimSpace(text), "\n")
	text = mislabelRe.ReplaceAllString(text, "Giới tính")
	text = rejoinCaption(originRe, text)
	text = rejoinCaption(residenceRe, text)
	text = boilerplateRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// rejoinCaption merges a caption and its continuation lines into a single
// "<caption>: <part>, <part>" line.
func rejoinCaption(re *regexp.Regexp, text string) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		sub := re.FindStringSubmatch(m)
		body := strings.ReplaceAll(strings.TrimSpace(sub[2]), "\n", ", ")
		return sub[1] + ": " + body
	})
}
