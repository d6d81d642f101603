package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessIdentityText_NormalizesLineBreaks(t *testing.T) {
	in := "  Họ và tên: Nguyễn Văn A   \n\n   Ngày sinh: 25/03/1990  "
	got := PreprocessIdentityText(in)
	assert.Equal(t, "Họ và tên: Nguyễn Văn A\nNgày sinh: 25/03/1990", got)
}

func TestPreprocessIdentityText_FixesSexMislabel(t *testing.T) {
	assert.Equal(t, "Giới tính: Nam", PreprocessIdentityText("Giới tinh: Nam"))
	assert.Equal(t, "Giới tính: Nữ", PreprocessIdentityText("giới tinh: Nữ"))
}

func TestPreprocessIdentityText_RejoinsSplitOrigin(t *testing.T) {
	in := "Quê quán:\nTây Lộc\nThành phố Huế\nNgày sinh: 25/03/1990"
	got := PreprocessIdentityText(in)
	assert.Equal(t, "Quê quán: Tây Lộc, Thành phố Huế\nNgày sinh: 25/03/1990", got)
}

func TestPreprocessIdentityText_RejoinsSplitResidence(t *testing.T) {
	in := "Nơi thường trú:\n14/20 Hoàng Diệu\nTây Lộc\nThành phố Huế"
	got := PreprocessIdentityText(in)
	assert.Equal(t, "Nơi thường trú: 14/20 Hoàng Diệu, Tây Lộc, Thành phố Huế", got)
}

func TestPreprocessIdentityText_RejoinStopsAtNextLabeledField(t *testing.T) {
	// The continuation must not swallow the following labeled line.
	in := "Quê quán:\nTây Lộc\nNơi thường trú:\n14/20 Hoàng Diệu\nTây Lộc"
	got := PreprocessIdentityText(in)
	assert.Equal(t, "Quê quán: Tây Lộc\nNơi thường trú: 14/20 Hoàng Diệu, Tây Lộc", got)
}

func TestPreprocessIdentityText_InlineCaptionLeftAlone(t *testing.T) {
	in := "Quê quán: Tây Lộc, Thành phố Huế"
	assert.Equal(t, in, PreprocessIdentityText(in))
}

func TestPreprocessIdentityText_StripsHeaderBoilerplate(t *testing.T) {
	in := "CỘNG HÒA XÃ HỘI CHỦ NGHĨA VIỆT NAM\n" +
		"Độc lập - Tự do - Hạnh phúc\n" +
		"SOCIALIST REPUBLIC OF VIET NAM\n" +
		"Independence - Freedom - Happiness\n" +
		"CĂN CƯỚC CÔNG DÂN\n" +
		"*\n" +
		"Citizen Identity Card\n" +
		"Số / No.: 001234567890"
	got := PreprocessIdentityText(in)
	assert.Equal(t, "Số / No.: 001234567890", got)
}

func TestPreprocessIdentityText_Idempotent(t *testing.T) {
	in := "CỘNG HÒA XÃ HỘI CHỦ NGHĨA VIỆT NAM\n" +
		"Độc lập - Tự do - Hạnh phúc\n" +
		"SOCIALIST REPUBLIC OF VIET NAM\n" +
		"Independence - Freedom - Happiness\n" +
		"CĂN CƯỚC CÔNG DÂN\n" +
		"*\n" +
		"Citizen Identity Card\n" +
		"Số / No.: 001234567890\n" +
		"Giới tinh: Nam\n" +
		"Quê quán:\nTây Lộc\nThành phố Huế"
	once := PreprocessIdentityText(in)
	twice := PreprocessIdentityText(once)
	assert.Equal(t, once, twice)
}

func TestPreprocessIdentityText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", PreprocessIdentityText("   \n  "))
}
