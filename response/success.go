// response/success.go
/* Responsible for handling successful API responses. It reads the response body, logs the raw response details,
and unmarshals the response based on the content type (JSON or XML). */
package response

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"go.uber.org/zap"
)

// contentHandler defines the signature for unmarshaling content from an io.Reader.
type contentHandler func(io.Reader, any, logger.Logger, string) error

// responseUnmarshallers maps MIME types to the corresponding contentHandler functions.
var responseUnmarshallers = map[string]contentHandler{
	"application/json": unmarshalJSON,
	"application/xml":  unmarshalXML,
	"text/xml":         unmarshalXML,
}

// HandleAPISuccessResponse reads the response body, logs the raw response details, and unmarshals the response based on the content type.
// Responses with no usable body (a nil output target, a 204, or an empty payload) are treated as
// successfully consumed without attempting to unmarshal.
func HandleAPISuccessResponse(resp *http.Response, out any, log logger.Logger) error {
	if resp.Request.Method == http.MethodDelete {
		return successfulDeleteRequest(resp, log)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return err
	}

	log.Debug("Raw HTTP Response", zap.String("Body", string(bodyBytes)))

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bodyBytes) == 0 {
		return nil
	}

	bodyReader := bytes.NewReader(bodyBytes)
	contentType := resp.Header.Get("Content-Type")
	contentDisposition := resp.Header.Get("Content-Disposition")

	contentTypeNoParams, _ := parseHeader(contentType)

	if handler, ok := responseUnmarshallers[contentTypeNoParams]; ok {
		return handler(bodyReader, out, log, contentType)
	}

	if isBinaryData(contentType, contentDisposition) {
		return handleBinaryData(bodyReader, log, out, contentDisposition)
	}

	errMsg := fmt.Sprintf("unexpected MIME type: %s", contentType)
	log.Error("Unmarshal error", zap.String("content type", contentType), zap.Error(errors.New(errMsg)))
	return errors.New(errMsg)

}

// successfulDeleteRequest handles the special case for DELETE requests, where a successful response might not contain a body.
func successfulDeleteRequest(resp *http.Response, log logger.Logger) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Info("Successfully processed DELETE request", zap.String("URL", resp.Request.URL.String()), zap.Int("Status Code", resp.StatusCode))
		return nil
	}
	return fmt.Errorf("DELETE request failed, status code: %d", resp.StatusCode)
}

// unmarshalJSON unmarshals JSON content from an io.Reader into the provided output structure.
func unmarshalJSON(reader io.Reader, out any, log logger.Logger, mimeType string) error {
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(out); err != nil {
		log.Error("JSON Unmarshal error", zap.Error(err))
		return err
	}
	log.Debug("Successfully unmarshalled JSON response", zap.String("content type", mimeType))
	return nil
}

// unmarshalXML unmarshals XML content from an io.Reader into the provided output structure.
func unmarshalXML(reader io.Reader, out any, log logger.Logger, mimeType string) error {
	decoder := xml.NewDecoder(reader)
	if err := decoder.Decode(out); err != nil {
		log.Error("XML Unmarshal error", zap.Error(err))
		return err
	}
	log.Debug("Successfully unmarshalled XML response", zap.String("content type", mimeType))
	return nil
}

// isBinaryData checks if the MIME type or Content-Disposition indicates binary data.
func isBinaryData(contentType, contentDisposition string) bool {
	return strings.Contains(contentType, "application/octet-stream") || strings.HasPrefix(contentDisposition, "attachment")
}

// handleBinaryData reads binary data from an io.Reader and stores it in *[]byte or streams it to an io.Writer.
func handleBinaryData(reader io.Reader, log logger.Logger, out any, contentDisposition string) error {
	switch out := out.(type) {
	case *[]byte:
		data, err := io.ReadAll(reader)
		if err != nil {
			log.Error("Failed to read binary data", zap.Error(err))
			return err
		}
		*out = data

	case io.Writer:
		_, err := io.Copy(out, reader)
		if err != nil {
			log.Error("Failed to stream binary data to io.Writer", zap.Error(err))
			return err
		}

	default:
		return errors.New("output parameter is not suitable for binary data (*[]byte or io.Writer)")
	}

	if contentDisposition != "" {
		_, params := parseHeader(contentDisposition)
		if filename, ok := params["filename"]; ok {
			log.Debug("Extracted filename from Content-Disposition", zap.String("filename", filename))
		}
	}

	return nil
}
