// proxy/proxy.go
// Description: This file contains the proxy setup for clients that reach Jamf through a
// corporate HTTP(S) proxy.
package proxy

import (
	"encoding/base64"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"go.uber.org/zap"
)

// SetupProxy routes the client's traffic through the given proxy URL. Basic credentials,
// when supplied, ride on the proxy URL for plain HTTP proxying and in the
// Proxy-Authorization CONNECT header for tunneled HTTPS. An existing transport is extended
// rather than replaced so TLS settings configured earlier survive.
func SetupProxy(httpClient *http.Client, proxyURL, proxyUsername, proxyPassword string, log logger.Logger) error {
	if proxyURL == "" {
		return nil
	}

	parsedProxyURL, err := url.Parse(proxyURL)
	if err != nil {
		log.Error("Failed to parse proxy URL", zap.String("ProxyURL", proxyURL), zap.Error(err))
		return err
	}

	transport, ok := httpClient.Transport.(*http.Transport)
	if !ok || transport == nil {
		transport = &http.Transport{}
		httpClient.Transport = transport
	}

	if proxyUsername != "" && proxyPassword != "" {
		parsedProxyURL.User = url.UserPassword(proxyUsername, proxyPassword)
		credentials := base64.StdEncoding.EncodeToString([]byte(proxyUsername + ":" + proxyPassword))
		transport.ProxyConnectHeader = http.Header{
			"Proxy-Authorization": []string{"Basic " + credentials},
		}
	}

	transport.Proxy = http.ProxyURL(parsedProxyURL)

	log.Info("Proxy configured", zap.String("ProxyURL", proxyURL))
	return nil
}
