package main

import "encoding/json"

type FileSum struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
	CRC  string `json:"crc"`

	crc uint32
}

type SumReport struct {
	Files    []FileSum `json:"files"`
	Combined string    `json:"combined,omitempty"`
}

type MaskReport struct {
	Bytes   int   `json:"bytes"`
	Toggles []int `json:"toggles"`
}

func MarshalReportJson(v any) ([]byte, error) {
	return json.Marshal(v)
}
