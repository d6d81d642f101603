package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietscan/internal/config"
	"vietscan/internal/domain"
	"vietscan/internal/port"
)

type fakeCompleter struct {
	reply   string
	err     error
	lastReq port.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req port.CompletionRequest) (string, error) {
	f.lastReq = req
	return f.reply, f.err
}

func newTestExtractor(c port.Completer) *Extractor {
	return NewExtractor(c, &config.CompletionConfig{MaxTokens: 500, Temperature: 0.2})
}

func fencedReply(body string) string {
	return "```json\n" + body + "\n```"
}

func TestExtract_Success(t *testing.T) {
	completer := &fakeCompleter{
		reply: "Kết quả:\n" + fencedReply(`{"success": true, "document_type": "identity_card", "data": {"full_name": "Nguyễn Văn A", "sex": "Nam"}}`),
	}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "Họ và tên: Nguyễn Văn A")

	require.True(t, res.Success)
	assert.Equal(t, domain.DocTypeIdentityCard, res.DocumentType)
	require.NotNil(t, res.Data.Get("full_name"))
	assert.Equal(t, "Nguyễn Văn A", *res.Data.Get("full_name"))
	require.NotNil(t, res.Data.Get("sex"))
	assert.Equal(t, "Nam", *res.Data.Get("sex"))
	assert.Nil(t, res.Data.Get("nationality"))
}

func TestExtract_CompletionRequestParameters(t *testing.T) {
	completer := &fakeCompleter{reply: fencedReply(`{"success": true, "data": {}}`)}
	e := newTestExtractor(completer)

	e.Extract(context.Background(), domain.DocTypeCarRegistration, "Biển số: 30A-123.45")

	assert.Equal(t, SystemPrompt, completer.lastReq.System)
	assert.Equal(t, 500, completer.lastReq.MaxTokens)
	assert.Equal(t, 0.2, completer.lastReq.Temperature)
	assert.Contains(t, completer.lastReq.Prompt, "Biển số: 30A-123.45")
}

func TestExtract_PreprocessesIdentityText(t *testing.T) {
	completer := &fakeCompleter{reply: fencedReply(`{"success": true, "data": {}}`)}
	e := newTestExtractor(completer)

	e.Extract(context.Background(), domain.DocTypeIdentityCard, "Giới tinh: Nam")

	assert.Contains(t, completer.lastReq.Prompt, "Giới tính: Nam")
	assert.NotContains(t, completer.lastReq.Prompt, "Giới tinh")
}

func TestExtract_LeavesVehicleTextUntouched(t *testing.T) {
	completer := &fakeCompleter{reply: fencedReply(`{"success": true, "data": {}}`)}
	e := newTestExtractor(completer)

	e.Extract(context.Background(), domain.DocTypeMotorcycleRegistration, "Giới tinh: Nam")

	assert.Contains(t, completer.lastReq.Prompt, "Giới tinh: Nam")
}

func TestExtract_RepairsSingleQuotedReply(t *testing.T) {
	completer := &fakeCompleter{
		reply: fencedReply(`{'success': true, 'document_type': 'identity_card', 'data': {'full_name': 'Trần Thị B'}}`),
	}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "text")

	require.True(t, res.Success)
	require.NotNil(t, res.Data.Get("full_name"))
	assert.Equal(t, "Trần Thị B", *res.Data.Get("full_name"))
}

func TestExtract_APIError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection refused")}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "text")

	assert.False(t, res.Success)
	assert.Equal(t, "API error: connection refused", res.Err)
	assert.Nil(t, res.Data)
}

func TestExtract_NoJSONBlock(t *testing.T) {
	completer := &fakeCompleter{reply: "Tôi không thể xử lý văn bản này."}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "text")

	assert.False(t, res.Success)
	assert.Equal(t, "no JSON block found in response", res.Err)
}

func TestExtract_InvalidJSON(t *testing.T) {
	completer := &fakeCompleter{reply: fencedReply(`{"success": true, "data":`)}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "text")

	assert.False(t, res.Success)
	assert.True(t, strings.HasPrefix(res.Err, "invalid JSON format: "), res.Err)
}

func TestExtract_ModelReportedFailure(t *testing.T) {
	completer := &fakeCompleter{
		reply: fencedReply(`{"success": false, "error": "văn bản OCR không đọc được"}`),
	}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "text")

	assert.False(t, res.Success)
	assert.Equal(t, "văn bản OCR không đọc được", res.Err)
}

func TestExtract_ModelReportedFailureWithoutReason(t *testing.T) {
	completer := &fakeCompleter{reply: fencedReply(`{"success": false}`)}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "text")

	assert.False(t, res.Success)
	assert.Equal(t, "extraction unsuccessful", res.Err)
}

func TestExtract_EnforcesClosedSchema(t *testing.T) {
	completer := &fakeCompleter{
		reply: fencedReply(`{"success": true, "data": {"full_name": "Nguyễn Văn A", "unexpected_key": "x"}}`),
	}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "text")

	require.True(t, res.Success)
	schema := domain.FieldSchema(domain.DocTypeIdentityCard)
	assert.Len(t, res.Data, len(schema))
	for _, key := range schema {
		assert.Contains(t, res.Data, key)
	}
	assert.NotContains(t, res.Data, "unexpected_key")
}

func TestExtract_CoercesNumericValues(t *testing.T) {
	completer := &fakeCompleter{
		reply: fencedReply(`{"success": true, "data": {"seating_capacity": 5, "plate_no": "30A-123.45"}}`),
	}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeCarRegistration, "text")

	require.True(t, res.Success)
	require.NotNil(t, res.Data.Get("seating_capacity"))
	assert.Equal(t, "5", *res.Data.Get("seating_capacity"))
}

func TestExtract_TreatsNullStringAsMissing(t *testing.T) {
	completer := &fakeCompleter{
		reply: fencedReply(`{"success": true, "data": {"nationality": "null", "sex": "  "}}`),
	}
	e := newTestExtractor(completer)

	res := e.Extract(context.Background(), domain.DocTypeIdentityCard, "text")

	require.True(t, res.Success)
	assert.Nil(t, res.Data.Get("nationality"))
	assert.Nil(t, res.Data.Get("sex"))
}
