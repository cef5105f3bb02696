package hook

// ProfileEntryPoints lists the legacy profile API exports the redirector
// intercepts, in attach order.
func ProfileEntryPoints() []string {
	return []string{
		"GetPrivateProfileStringA",
		"GetPrivateProfileStringW",
		"GetPrivateProfileIntA",
		"GetPrivateProfileIntW",
		"GetPrivateProfileSectionNamesA",
		"GetPrivateProfileSectionNamesW",
		"GetPrivateProfileSectionA",
		"GetPrivateProfileSectionW",
		"WritePrivateProfileStringA",
		"WritePrivateProfileStringW",
	}
}
