package models

type Page string

const (
	PageLogin                 Page = "login"
	PageMunicipalitySelection Page = "municipality-selection"
	PageHome                  Page = "home"
	PageCompose               Page = "compose"
	PageMyPosts               Page = "posts"
	PageProfile               Page = "profile"
	PageMunicipalityInfo      Page = "municipality-info"
	PageDashboard             Page = "municipal"
)

var pages = map[Page]struct{}{
	PageLogin: {}, PageMunicipalitySelection: {}, PageHome: {}, PageCompose: {},
	PageMyPosts: {}, PageProfile: {}, PageMunicipalityInfo: {}, PageDashboard: {},
}

func (p Page) Valid() bool {
	_, ok := pages[p]
	return ok
}
