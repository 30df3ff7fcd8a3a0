package buildinfo

const Graffiti = "      _         _                     \n  ___| |___  __| | ___ _ __ ___   ___  \n / __| / __|/ _` |/ _ \\ '_ ` _ \\ / _ \\ \n| (__| \\__ \\ (_| |  __/ | | | | | (_) |\n \\___|_|___/\\__,_|\\___|_| |_| |_|\\___/ \n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "CLSDEMO"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
