package profile

// Narrow (A) handler variants. Arguments are ANSI code-page bytes.

// GetStringA is the redirected GetPrivateProfileStringA. A nil section
// enumerates section names; a nil key enumerates the section's key names;
// otherwise the value (or default, or empty string) is marshaled into buf.
func (r *Redirector) GetStringA(section, key, def, buf, file []byte) (int, error) {
	return getString(r, r.narrow, "GetPrivateProfileStringA", section, key, def, buf, file)
}

// GetIntA is the redirected GetPrivateProfileIntA.
func (r *Redirector) GetIntA(section, key []byte, def int64, file []byte) (int64, error) {
	return getInt(r, r.narrow, "GetPrivateProfileIntA", section, key, def, file)
}

// GetSectionNamesA is the redirected GetPrivateProfileSectionNamesA.
func (r *Redirector) GetSectionNamesA(buf, file []byte) (int, error) {
	return getString(r, r.narrow, "GetPrivateProfileSectionNamesA", nil, nil, nil, buf, file)
}

// GetSectionA is the redirected GetPrivateProfileSectionA: the section's
// key=value pairs as a double-null-terminated list.
func (r *Redirector) GetSectionA(section, buf, file []byte) (int, error) {
	return getSection(r, r.narrow, "GetPrivateProfileSectionA", section, buf, file)
}

// WriteStringA is the redirected WritePrivateProfileStringA. A nil key
// deletes the whole section; a nil value deletes the key; otherwise the
// value is assigned.
func (r *Redirector) WriteStringA(section, key, value, file []byte) (bool, error) {
	return writeString(r, r.narrow, "WritePrivateProfileStringA", section, key, value, file, r.nativeA)
}
