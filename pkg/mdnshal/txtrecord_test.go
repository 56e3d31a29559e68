package mdnshal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTXTRoundTrip(t *testing.T) {
	info := ServiceInfo{
		ServiceName:         "printer",
		ServiceSpecificInfo: []byte{0x00, 0xFF, 0x10},
		Node:                "abc",
	}

	txt := EncodeServiceTXT(info)
	assert.Equal(t, "printer", txt[TXTKeyService])
	assert.Equal(t, "abc", txt[TXTKeyNode])

	got, err := DecodeServiceTXT(StringsToTXTRecords(TXTRecordsToStrings(txt)))
	require.NoError(t, err)
	assert.Equal(t, info, got)
}

func TestEncodeServiceTXTOmitsEmptyInfo(t *testing.T) {
	txt := EncodeServiceTXT(ServiceInfo{ServiceName: "x", Node: "n"})
	_, ok := txt[TXTKeyInfo]
	assert.False(t, ok)
}

func TestDecodeServiceTXTErrors(t *testing.T) {
	tests := []struct {
		name string
		txt  TXTRecordMap
		want error
	}{
		{"missing service", TXTRecordMap{TXTKeyNode: "n"}, ErrMissingRequired},
		{"empty service", TXTRecordMap{TXTKeyService: ""}, ErrMissingRequired},
		{"bad info", TXTRecordMap{TXTKeyService: "x", TXTKeyInfo: "!!"}, ErrInvalidTXT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeServiceTXT(tt.txt)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTXTRecordsToStringsSorted(t *testing.T) {
	got := TXTRecordsToStrings(TXTRecordMap{"b": "2", "a": "1", "c": ""})
	assert.Equal(t, []string{"a=1", "b=2", "c="}, got)
}

func TestStringsToTXTRecords(t *testing.T) {
	got := StringsToTXTRecords([]string{"a=1", "b=x=y", "flag", "=skip"})
	assert.Equal(t, TXTRecordMap{"a": "1", "b": "x=y", "flag": ""}, got)
}
