package mdnshal

import (
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
)

// TXT record keys.
const (
	TXTKeyService = "svc"
	TXTKeyInfo    = "ssi"
	TXTKeyNode    = "node"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// ServiceInfo is what a publish advertises.
type ServiceInfo struct {
	// ServiceName is the NAN service name.
	ServiceName string

	// ServiceSpecificInfo is opaque application data.
	ServiceSpecificInfo []byte

	// Node identifies the advertising radio, so that a radio does not
	// discover its own publishes.
	Node string
}

// EncodeServiceTXT creates the TXT records for a publish.
func EncodeServiceTXT(info ServiceInfo) TXTRecordMap {
	txt := TXTRecordMap{
		TXTKeyService: info.ServiceName,
		TXTKeyNode:    info.Node,
	}
	if len(info.ServiceSpecificInfo) > 0 {
		txt[TXTKeyInfo] = base64.RawStdEncoding.EncodeToString(info.ServiceSpecificInfo)
	}
	return txt
}

// DecodeServiceTXT parses the TXT records of a discovered publish.
func DecodeServiceTXT(txt TXTRecordMap) (ServiceInfo, error) {
	var info ServiceInfo

	name, ok := txt[TXTKeyService]
	if !ok || name == "" {
		return info, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyService)
	}
	info.ServiceName = name
	info.Node = txt[TXTKeyNode]

	if s, ok := txt[TXTKeyInfo]; ok {
		ssi, err := base64.RawStdEncoding.DecodeString(s)
		if err != nil {
			return info, fmt.Errorf("%w: %v", ErrInvalidTXT, err)
		}
		info.ServiceSpecificInfo = ssi
	}
	return info, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to sorted "key=value" strings.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// StringsToTXTRecords parses "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		k, v, _ := strings.Cut(s, "=")
		if k != "" {
			txt[k] = v
		}
	}
	return txt
}
