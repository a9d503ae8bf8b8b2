package launches

// Config controls where the launch dataset is read from.
type Config struct {
	DataPath string
	Verbose  bool
}
