package config

const (
	AppName    = "moodselector"
	AppVersion = "0.3.0"
	CfgFile    = "launcher.toml"
	LogFile    = "moodselector.log"
	UserDir    = "user"
)
