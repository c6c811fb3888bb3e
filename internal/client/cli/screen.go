package cli

// Screen is the currently shown view. It decides which commands apply.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenHome
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenSignup:
		return "signup"
	case ScreenHome:
		return "home"
	default:
		return "unknown"
	}
}
