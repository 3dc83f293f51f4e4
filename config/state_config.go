package config

// StateConfig backs the offline state command, which only needs the database.
type StateConfig struct {
	Database Database
	Log      log
}

func (conf *StateConfig) Validate() error {
	return validateDatabaseConf(conf.Database)
}

func CheckSuperfluousStateKeys(keys []string) []string {
	validKeys := make(map[string]struct{})

	addDatabaseConfigKeys(validKeys)
	addLogConfigKeys(validKeys)

	// Check keys
	ignoredKeys := make([]string, 0)
	for _, key := range keys {
		if _, ok := validKeys[key]; !ok {
			ignoredKeys = append(ignoredKeys, key)
		}
	}

	return ignoredKeys
}
