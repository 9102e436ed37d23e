// apiintegrations/jamfpro/request.go
package jamfpro

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// MarshalRequest encodes the request body according to the endpoint for the API: XML for
// Classic API endpoints under /JSSResource, JSON otherwise. A nil body produces no payload.
func (j *Integration) MarshalRequest(body interface{}, method string, endpoint string) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)

	format := "json"
	if strings.Contains(endpoint, "/JSSResource") {
		format = "xml"
	}

	switch format {
	case "xml":
		data, err = xml.Marshal(body)
		if err != nil {
			j.Logger.Error("Failed marshaling XML request", zap.Error(err))
			return nil, err
		}

		if method == "POST" || method == "PUT" {
			j.Logger.Debug("XML Request Body", zap.String("Body", string(data)))
		}

	case "json":
		data, err = json.Marshal(body)
		if err != nil {
			j.Logger.Error("Failed marshaling JSON request", zap.Error(err))
			return nil, err
		}

		if method == "POST" || method == "PUT" || method == "PATCH" {
			j.Logger.Debug("JSON Request Body", zap.String("Body", string(data)))
		}
	}

	return data, nil
}

// MarshalMultipartRequest creates a multipart request body for sending files and form fields
// in a single request, returning the body and its boundary content type.
func (j *Integration) MarshalMultipartRequest(fields map[string]string, files map[string]string) ([]byte, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for field, value := range fields {
		j.Logger.Debug("Adding field to multipart request", zap.String("Field", field), zap.String("Value", value))
		if err := writer.WriteField(field, value); err != nil {
			return nil, "", err
		}
	}

	for formField, filePath := range files {
		j.Logger.Debug("Adding file to multipart request", zap.String("FormField", formField), zap.String("FilePath", filePath))
		if err := j.addFilePart(writer, formField, filePath); err != nil {
			return nil, "", err
		}
	}

	// Close the writer to finish writing the multipart message
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	bodyBytes := body.Bytes()

	// Log the boundary and a partial body for debugging
	j.Logger.Debug("Multipart boundary", zap.String("Boundary", writer.Boundary()))
	j.Logger.Debug("Multipart request body (partial)", zap.String("Body", partialBody(bodyBytes)))

	return bodyBytes, writer.FormDataContentType(), nil
}

// addFilePart streams one file into the multipart writer, opening it safely first.
func (j *Integration) addFilePart(writer *multipart.Writer, formField, filePath string) error {
	file, err := SafeOpenFile(filePath)
	if err != nil {
		j.Logger.Error("Failed to open file securely", zap.String("file", filePath), zap.Error(err))
		return err
	}
	defer file.Close()

	part, err := writer.CreateFormFile(formField, filepath.Base(filePath))
	if err != nil {
		return err
	}

	_, err = io.Copy(part, file)
	return err
}

// partialBody returns the first and last kilobyte of a multipart body so large uploads do not
// flood the debug log.
func partialBody(bodyBytes []byte) string {
	const logSegmentSize = 1024 // 1 KB
	if len(bodyBytes) <= 2*logSegmentSize {
		return string(bodyBytes)
	}
	return string(bodyBytes[:logSegmentSize]) + "..." + string(bodyBytes[len(bodyBytes)-logSegmentSize:])
}
