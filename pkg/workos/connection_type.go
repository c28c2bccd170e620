package workos

import (
	"encoding/json"
	"fmt"
)

// ConnectionType identifies the identity provider behind a connection. The
// set is closed: decoding any other value fails.
type ConnectionType string

const (
	ConnectionTypeADFSSAML              ConnectionType = "ADFSSAML"
	ConnectionTypeAdpOidc               ConnectionType = "AdpOidc"
	ConnectionTypeAuth0SAML             ConnectionType = "Auth0SAML"
	ConnectionTypeAzureSAML             ConnectionType = "AzureSAML"
	ConnectionTypeCasSAML               ConnectionType = "CasSAML"
	ConnectionTypeClassLinkSAML         ConnectionType = "ClassLinkSAML"
	ConnectionTypeCloudflareSAML        ConnectionType = "CloudflareSAML"
	ConnectionTypeCyberArkSAML          ConnectionType = "CyberArkSAML"
	ConnectionTypeDuoSAML               ConnectionType = "DuoSAML"
	ConnectionTypeGenericOIDC           ConnectionType = "GenericOIDC"
	ConnectionTypeGenericSAML           ConnectionType = "GenericSAML"
	ConnectionTypeGoogleOAuth           ConnectionType = "GoogleOAuth"
	ConnectionTypeGoogleSAML            ConnectionType = "GoogleSAML"
	ConnectionTypeJumpCloudSAML         ConnectionType = "JumpCloudSAML"
	ConnectionTypeKeycloakSAML          ConnectionType = "KeycloakSAML"
	ConnectionTypeLastPassSAML          ConnectionType = "LastPassSAML"
	ConnectionTypeLoginGovOidc          ConnectionType = "LoginGovOidc"
	ConnectionTypeMagicLink             ConnectionType = "MagicLink"
	ConnectionTypeMicrosoftOAuth        ConnectionType = "MicrosoftOAuth"
	ConnectionTypeMiniOrangeSAML        ConnectionType = "MiniOrangeSAML"
	ConnectionTypeNetIqSAML             ConnectionType = "NetIqSAML"
	ConnectionTypeOktaSAML              ConnectionType = "OktaSAML"
	ConnectionTypeOneLoginSAML          ConnectionType = "OneLoginSAML"
	ConnectionTypeOracleSAML            ConnectionType = "OracleSAML"
	ConnectionTypePingFederateSAML      ConnectionType = "PingFederateSAML"
	ConnectionTypePingOneSAML           ConnectionType = "PingOneSAML"
	ConnectionTypeRipplingSAML          ConnectionType = "RipplingSAML"
	ConnectionTypeSalesforceSAML        ConnectionType = "SalesforceSAML"
	ConnectionTypeShibbolethGenericSAML ConnectionType = "ShibbolethGenericSAML"
	ConnectionTypeShibbolethSAML        ConnectionType = "ShibbolethSAML"
	ConnectionTypeSimpleSamlPhpSAML     ConnectionType = "SimpleSamlPhpSAML"
	ConnectionTypeVMwareSAML            ConnectionType = "VMwareSAML"
)

var connectionTypes = map[ConnectionType]struct{}{
	ConnectionTypeADFSSAML:              {},
	ConnectionTypeAdpOidc:               {},
	ConnectionTypeAuth0SAML:             {},
	ConnectionTypeAzureSAML:             {},
	ConnectionTypeCasSAML:               {},
	ConnectionTypeClassLinkSAML:         {},
	ConnectionTypeCloudflareSAML:        {},
	ConnectionTypeCyberArkSAML:          {},
	ConnectionTypeDuoSAML:               {},
	ConnectionTypeGenericOIDC:           {},
	ConnectionTypeGenericSAML:           {},
	ConnectionTypeGoogleOAuth:           {},
	ConnectionTypeGoogleSAML:            {},
	ConnectionTypeJumpCloudSAML:         {},
	ConnectionTypeKeycloakSAML:          {},
	ConnectionTypeLastPassSAML:          {},
	ConnectionTypeLoginGovOidc:          {},
	ConnectionTypeMagicLink:             {},
	ConnectionTypeMicrosoftOAuth:        {},
	ConnectionTypeMiniOrangeSAML:        {},
	ConnectionTypeNetIqSAML:             {},
	ConnectionTypeOktaSAML:              {},
	ConnectionTypeOneLoginSAML:          {},
	ConnectionTypeOracleSAML:            {},
	ConnectionTypePingFederateSAML:      {},
	ConnectionTypePingOneSAML:           {},
	ConnectionTypeRipplingSAML:          {},
	ConnectionTypeSalesforceSAML:        {},
	ConnectionTypeShibbolethGenericSAML: {},
	ConnectionTypeShibbolethSAML:        {},
	ConnectionTypeSimpleSamlPhpSAML:     {},
	ConnectionTypeVMwareSAML:            {},
}

// ParseConnectionType maps the provider string onto a ConnectionType.
func ParseConnectionType(s string) (ConnectionType, error) {
	ct := ConnectionType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("workos: unknown connection type %q", s)
	}
	return ct, nil
}

// IsValid reports whether ct is one of the known provider identifiers.
func (ct ConnectionType) IsValid() bool {
	_, ok := connectionTypes[ct]
	return ok
}

func (ct ConnectionType) String() string { return string(ct) }

// UnmarshalJSON rejects anything outside the known set.
func (ct *ConnectionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseConnectionType(s)
	if err != nil {
		return err
	}

	*ct = parsed
	return nil
}

// ConnectionState is the lifecycle state of a connection.
type ConnectionState string

const (
	ConnectionStateDraft      ConnectionState = "Draft"
	ConnectionStateActive     ConnectionState = "Active"
	ConnectionStateInactive   ConnectionState = "Inactive"
	ConnectionStateValidating ConnectionState = "Validating"
)

// ParseConnectionState maps the provider string onto a ConnectionState.
func ParseConnectionState(s string) (ConnectionState, error) {
	switch st := ConnectionState(s); st {
	case ConnectionStateDraft, ConnectionStateActive, ConnectionStateInactive, ConnectionStateValidating:
		return st, nil
	default:
		return "", fmt.Errorf("workos: unknown connection state %q", s)
	}
}

func (st ConnectionState) String() string { return string(st) }

// UnmarshalJSON rejects anything outside the four known states.
func (st *ConnectionState) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseConnectionState(s)
	if err != nil {
		return err
	}

	*st = parsed
	return nil
}
