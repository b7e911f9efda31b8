package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"output":          "metadata.jsonld",
		"dataset_version": "1.0.0",
		"language":        "en",
	}
}
