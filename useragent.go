package faker

import (
	"fmt"

	"github.com/mshima/faker/pkg/random"
)

// Browser shares of generated user agents.
var userAgentBrowsers = []random.Weighted[string]{
	{Weight: 45, Value: "chrome"},
	{Weight: 16, Value: "firefox"},
	{Weight: 12, Value: "edge"},
	{Weight: 7, Value: "opera"},
	{Weight: 5, Value: "safari"},
}

var (
	windowsVersions = []string{"6.1", "6.2", "6.3", "10.0"}
	linuxArchs      = []string{"i686", "x86_64"}
)

// UserAgent returns a browser user agent string such as
// "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko)
// Chrome/96.0.4664.45 Safari/537.36".
func (i *Internet) UserAgent() string {
	browser, _ := random.WeightedElement(i.f.rand, userAgentBrowsers)
	switch browser {
	case "firefox":
		v := i.f.between(60, 120)
		return fmt.Sprintf("Mozilla/5.0 (%s; rv:%d.0) Gecko/20100101 Firefox/%d.0", i.platform(), v, v)
	case "safari":
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/%d.%d Safari/605.1.15",
			i.macPlatform(), i.f.between(11, 17), i.f.between(0, 6))
	case "edge":
		return i.chrome("Windows NT 10.0; Win64; x64") + " Edg/" + i.chromiumVersion()
	case "opera":
		return i.chrome(i.platform()) + " OPR/" + i.chromiumVersion()
	default:
		return i.chrome(i.platform())
	}
}

func (i *Internet) chrome(platform string) string {
	return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36",
		platform, i.chromiumVersion())
}

func (i *Internet) chromiumVersion() string {
	return fmt.Sprintf("%d.0.%d.%d", i.f.between(60, 120), i.f.between(3000, 6000), i.f.between(0, 200))
}

func (i *Internet) platform() string {
	switch i.f.rand.IntN(3) {
	case 0:
		return "Windows NT " + random.Element(i.f.rand, windowsVersions) + "; Win64; x64"
	case 1:
		return i.macPlatform()
	default:
		return "X11; Linux " + random.Element(i.f.rand, linuxArchs)
	}
}

func (i *Internet) macPlatform() string {
	return fmt.Sprintf("Macintosh; Intel Mac OS X 10_%d_%d", i.f.between(10, 15), i.f.between(0, 7))
}
