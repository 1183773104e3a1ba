package locale

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// lcidTags maps the handful of Windows LCIDs that actually show up in
// spreadsheet [$-LCID] escapes to BCP-47 language tags. This is not an
// exhaustive LCID table — just the locales the format engine is likely
// to see — and is deliberately small rather than guessed at.
var lcidTags = map[uint32]string{
	0x0409: "en-US",
	0x0809: "en-GB",
	0x040C: "fr-FR",
	0x0407: "de-DE",
	0x0410: "it-IT",
	0x040A: "es-ES",
	0x0411: "ja-JP",
	0x0412: "ko-KR",
	0x0804: "zh-CN",
	0x0404: "zh-TW",
	0x0419: "ru-RU",
	0x0416: "pt-BR",
}

// CurrencyForLCID resolves the ISO currency symbol for a Windows LCID via
// golang.org/x/text's region/currency tables. ok is false when the LCID
// is not one of the recognized codes or its region has no currency unit
// tracked; callers should fall back to Options.Locale.CurrencySymbol.
func CurrencyForLCID(lcid uint32) (symbol string, ok bool) {
	tag, known := lcidTags[lcid]
	if !known {
		return "", false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", false
	}
	unit, conf := currency.FromTag(t)
	if conf == language.No {
		return "", false
	}
	return fmt.Sprint(currency.Symbol(unit)), true
}
