package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"

	"stagifyapi/services"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

// FilePart is one file attachment for a multipart request.
type FilePart struct {
	FieldName string
	FileName  string
	MIMEType  string
	Data      []byte
}

// NewMultipartRequest builds a multipart/form-data request with the given
// file parts and plain form fields.
func NewMultipartRequest(target string, files []FilePart, fields map[string]string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.FieldName, f.FileName))
		h.Set("Content-Type", f.MIMEType)
		part, err := writer.CreatePart(h)
		if err != nil {
			panic(err)
		}
		if _, err := part.Write(f.Data); err != nil {
			panic(err)
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			panic(err)
		}
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}
	req := httptest.NewRequest("POST", target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// NewImageUploadRequest is the common case: one file under "image".
func NewImageUploadRequest(target, fileName, mimeType string, data []byte, fields map[string]string) *http.Request {
	return NewMultipartRequest(target, []FilePart{{
		FieldName: "image",
		FileName:  fileName,
		MIMEType:  mimeType,
		Data:      data,
	}}, fields)
}

// PNGBytes returns an encoded solid-color PNG of the given dimensions.
func PNGBytes(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 180, B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// StagingProcessorMock replies with a canned generated image and records the
// last call for assertions.
type StagingProcessorMock struct {
	Image []byte
	MIME  string
	Err   error

	LastModel  services.LLMModelName
	LastPrompt string
	LastImages []services.ProviderImage
}

func (m *StagingProcessorMock) Configured() bool {
	return true
}

func (m *StagingProcessorMock) GenerateStagedImage(ctx context.Context, model services.LLMModelName, prompt string, images ...services.ProviderImage) (*services.GenerationResult, error) {
	m.LastModel = model
	m.LastPrompt = prompt
	m.LastImages = images
	if m.Err != nil {
		return nil, m.Err
	}
	mime := m.MIME
	if mime == "" {
		mime = "image/png"
	}
	data := m.Image
	if data == nil {
		data = PNGBytes(4, 4)
	}
	return &services.GenerationResult{
		Image:      services.ProviderImage{Data: data, MIMEType: mime},
		PromptUsed: prompt,
	}, nil
}

// UnconfiguredProcessorMock simulates a process started without an API key.
type UnconfiguredProcessorMock struct {
	StagingProcessorMock
}

func (m *UnconfiguredProcessorMock) Configured() bool {
	return false
}
