package extract

import (
	"strings"

	"vietscan/internal/domain"
)

// SystemPrompt establishes the assistant's role for every extraction call.
const SystemPrompt = "Bạn là trợ lý AI xử lý OCR giấy tờ Việt Nam, trả về JSON hợp lệ."

const fence = "```"

// intros carry the per-type task description. Every type shares the same
// outer contract: correct Vietnamese OCR character errors, canonicalize names
// and place names to their administrative spellings, reply with fenced JSON.
var intros = map[domain.DocumentType]string{
	domain.DocTypeIdentityCard:           "Phân tích văn bản OCR từ giấy tờ tùy thân Việt Nam. **Sửa lỗi ký tự tiếng Việt và chuẩn hóa họ tên và địa danh về đúng tên hành chính Việt Nam**. Sau đó trích xuất các thông tin vào JSON theo định dạng sau:",
	domain.DocTypeMotorcycleRegistration: "Phân tích văn bản OCR từ giấy đăng ký xe máy Việt Nam. **Sửa lỗi ký tự tiếng Việt và chuẩn hóa họ tên và địa danh về đúng tên hành chính Việt Nam**. Sau đó trích xuất các thông tin vào JSON theo định dạng sau:",
	domain.DocTypeCarRegistration:        "Phân tích văn bản OCR từ giấy đăng ký xe ô tô Việt Nam. **Sửa lỗi ký tự tiếng Việt và chuẩn hóa họ tên và địa danh về đúng tên hành chính Việt Nam**. Sau đó trích xuất các thông tin vào JSON theo định dạng sau:",
	domain.DocTypeCarInspection:          "Phân tích văn bản OCR từ giấy đăng kiểm xe ô tô Việt Nam. **Sửa lỗi ký tự tiếng Việt và chuẩn hóa họ tên và địa danh về đúng tên hành chính Việt Nam**. Sau đó trích xuất các thông tin vào JSON theo định dạng sau:",
}

// typeGuidance lists the per-type field-mapping instructions that precede the
// shared formatting rules.
var typeGuidance = map[domain.DocumentType][]string{
	domain.DocTypeIdentityCard: {
		"Trích xuất các trường: mã định danh (Số/No./ID), họ tên, ngày sinh, giới tính, quốc tịch, nơi thường trú, nơi sinh, quê quán, ngày cấp, ngày hết hạn.",
		"Địa chỉ như Quê quán hoặc Nơi thường trú đã được gộp thành một dòng, chứa dấu phẩy giữa các phần (ví dụ: \"14/20 Hoàng Diệu, Tây Lộc, Thành phố Huế, Thừa Thiên Huế\").",
		"Bỏ qua các dòng tiêu đề như \"CỘNG HÒA XÃ HỘI CHỦ NGHĨA VIỆT NAM\", \"CĂN CƯỚC CÔNG DÂN\"…",
	},
	domain.DocTypeMotorcycleRegistration: {
		"Trích xuất các trường: họ tên chủ xe, địa chỉ, nhãn hiệu, số loại, số máy, số khung, màu sơn, biển số.",
		"Lấy địa chỉ đầy đủ (xã, huyện, tỉnh) cho `address`, gộp thành một chuỗi duy nhất.",
	},
	domain.DocTypeCarRegistration: {
		"Trích xuất các trường: địa chỉ, nhãn hiệu, số loại, số máy, số khung, màu sơn, biển số, số chỗ ngồi, ngày hết hạn.",
		"Lấy địa chỉ đầy đủ (xã, huyện, tỉnh) cho `address`, gộp thành một chuỗi duy nhất.",
	},
	domain.DocTypeCarInspection: {
		"Trích xuất các trường: nhãn hiệu, số loại, số máy, số khung, loại phương tiện, dung tích, biển số, số chỗ ngồi, ngày hết hạn đăng kiểm.",
	},
}

// commonGuidance closes every prompt: date and sex canonicalization, locale
// correction, null-for-unknown, and the strict fenced-JSON reply contract.
var commonGuidance = []string{
	"Chuẩn hóa ngày tháng từ DD/MM/YYYY hoặc DD-MM-YYYY sang YYYY-MM-DD.",
	"Chuẩn hóa giới tính: \"Male\" → \"Nam\", \"Female\" → \"Nữ\".",
	"Nếu phát hiện tên địa danh sai do OCR (ví dụ: \"Phủ Thượng\"), hãy tự động sửa về đúng tên hành chính thực tế (\"Phú Thượng\").",
	"Có thể sử dụng kiến thức về địa danh Việt Nam để sửa lỗi như: \"Dién Biên Döng\" → \"Điện Biên Đông\", \"Thùa Thiên Huế\" → \"Thừa Thiên Huế\", \"Tp. Hô Chi Minh\" → \"TP. Hồ Chí Minh\"...",
	"Nếu thông tin không rõ ràng hoặc thiếu, để giá trị là null.",
	"Chỉ trả về JSON trong khối " + fence + "json ... " + fence + ", dùng dấu nháy kép cho chuỗi, không thêm bất kỳ văn bản mô tả nào khác.",
	"Nếu lỗi, trả về {\"success\": false, \"error\": \"lý do\"}.",
}

// BuildPrompt produces the complete instruction string for the completion
// service: task description, null-valued schema example for the document
// type, the OCR text verbatim, and the enumerated extraction rules.
func BuildPrompt(dt domain.DocumentType, ocrText string) string {
	var b strings.Builder
	b.WriteString(intros[dt])
	b.WriteString("\n\n")
	b.WriteString(fence + "json\n")
	b.WriteString(schemaExample(dt))
	b.WriteString("\n" + fence + "\n\n")
	b.WriteString("Văn bản OCR:\n")
	b.WriteString(fence + "\n")
	b.WriteString(ocrText)
	b.WriteString("\n" + fence + "\n\n")
	b.WriteString("Hướng dẫn:\n")
	for _, g := range typeGuidance[dt] {
		b.WriteString("- " + g + "\n")
	}
	for _, g := range commonGuidance {
		b.WriteString("- " + g + "\n")
	}
	return b.String()
}

// schemaExample renders the closed field set for dt as a JSON object with
// every field null, used as the formatting example in the prompt.
func schemaExample(dt domain.DocumentType) string {
	fields := domain.FieldSchema(dt)
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("  \"success\": true,\n")
	b.WriteString("  \"document_type\": \"" + string(dt) + "\",\n")
	b.WriteString("  \"data\": {\n")
	for i, f := range fields {
		b.WriteString("    \"" + f + "\": null")
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  }\n}")
	return b.String()
}
