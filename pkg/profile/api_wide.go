package profile

// Wide (W) handler variants. Arguments are UTF-16 code units.

// GetStringW is the redirected GetPrivateProfileStringW. A nil section
// enumerates section names; a nil key enumerates the section's key names;
// otherwise the value (or default, or empty string) is marshaled into buf.
func (r *Redirector) GetStringW(section, key, def, buf, file []uint16) (int, error) {
	return getString(r, r.wide, "GetPrivateProfileStringW", section, key, def, buf, file)
}

// GetIntW is the redirected GetPrivateProfileIntW.
func (r *Redirector) GetIntW(section, key []uint16, def int64, file []uint16) (int64, error) {
	return getInt(r, r.wide, "GetPrivateProfileIntW", section, key, def, file)
}

// GetSectionNamesW is the redirected GetPrivateProfileSectionNamesW.
func (r *Redirector) GetSectionNamesW(buf, file []uint16) (int, error) {
	return getString(r, r.wide, "GetPrivateProfileSectionNamesW", nil, nil, nil, buf, file)
}

// GetSectionW is the redirected GetPrivateProfileSectionW: the section's
// key=value pairs as a double-null-terminated list.
func (r *Redirector) GetSectionW(section, buf, file []uint16) (int, error) {
	return getSection(r, r.wide, "GetPrivateProfileSectionW", section, buf, file)
}

// WriteStringW is the redirected WritePrivateProfileStringW. A nil key
// deletes the whole section; a nil value deletes the key; otherwise the
// value is assigned.
func (r *Redirector) WriteStringW(section, key, value, file []uint16) (bool, error) {
	return writeString(r, r.wide, "WritePrivateProfileStringW", section, key, value, file, r.nativeW)
}
