// version.go
package version

import "fmt"

// AppName holds the name of the application
var AppName = "go-api-client-jamfpro"

// SDKVersion holds the current version of the application
var SDKVersion = "0.1.0"

// UserAgentBase is the product token reported in the User-Agent header
const UserAgentBase = "go-api-client-jamfpro"

// GetAppName returns the name of the application
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the application
func GetVersion() string {
	return SDKVersion
}

// GetUserAgentHeader returns the User-Agent header value sent with every request
func GetUserAgentHeader() string {
	return fmt.Sprintf("%s/%s", UserAgentBase, SDKVersion)
}
