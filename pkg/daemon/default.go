package daemon

var DefaultConfDirectory = "/etc/silentsetup/conf.d"

var DefaultConfig = &Config{
	ConfDirectory: DefaultConfDirectory,
}

func NewDefaultSilentSetupd() *SilentSetupd {
	return &SilentSetupd{
		Config: DefaultConfig,
	}
}
