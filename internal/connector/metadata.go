// Package connector describes this module to the IAM workflow engine.
package connector

type Metadata struct {
	Engine             string   `json:"engine"`
	Name               string   `json:"name"`
	Version            string   `json:"version"`
	SupportedExecution []string `json:"supported_execution"`
}

func ModuleMetadata() Metadata {
	return Metadata{
		Engine:             "iamx-redash",
		Name:               "IAMX Redash Connector",
		Version:            "0.1.0",
		SupportedExecution: []string{"provision", "revoke", "show", "fetchBatch"},
	}
}
