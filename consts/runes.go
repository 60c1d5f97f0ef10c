package consts

const (
	RuneColon    = ':'
	RuneAsterisk = '*'
	RuneFwdSlash = '/'
	RuneHash     = '#'
)

const (
	FwdSlash = "/"
	Hash     = "#"
)
