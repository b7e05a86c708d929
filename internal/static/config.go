package static

import (
	"os"

	"github.com/sandboxkit/seccomp-gate/internal/types"
	"gopkg.in/yaml.v3"
)

var seccompGateGlobalConfigurations types.SeccompGateGlobalConfigurations

// InitConfig loads the yaml config file. A missing file is not an error:
// the gate must work with zero configuration, so defaults apply.
func InitConfig(path string) error {
	seccompGateGlobalConfigurations = types.SeccompGateGlobalConfigurations{}
	setConfigDefaults()

	// read config file
	configFile, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	defer configFile.Close()

	// parse config file
	decoder := yaml.NewDecoder(configFile)
	err = decoder.Decode(&seccompGateGlobalConfigurations)
	if err != nil {
		return err
	}

	return nil
}

func setConfigDefaults() {
	seccompGateGlobalConfigurations.Log.Path = "logs"
	seccompGateGlobalConfigurations.Log.Level = "info"
}

// avoid global modification, use value copy instead
func GetSeccompGateGlobalConfigurations() types.SeccompGateGlobalConfigurations {
	return seccompGateGlobalConfigurations
}
