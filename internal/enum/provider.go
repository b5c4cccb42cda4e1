package enum

type Provider string

const (
	ProviderWhois        Provider = "whoisxml"
	ProviderDns          Provider = "dns"
	ProviderHttpsProbe   Provider = "https_probe"
	ProviderSafeBrowsing Provider = "safe_browsing"
	ProviderEmailRep     Provider = "emailrep"
	ProviderCrm          Provider = "crm"
)

func (t Provider) String() string {
	return string(t)
}
