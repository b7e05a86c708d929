package types

type SeccompGateGlobalConfigurations struct {
	Log struct {
		Path  string `yaml:"path"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	Policy struct {
		// merge the per-arch network tables into the allow list
		EnableNetwork bool `yaml:"enable_network"`
		// extra syscall numbers for the native 64-bit table
		ExtraAllow []int `yaml:"extra_allow"`
	} `yaml:"policy"`
}
