package internal

// Version is the spellcast release version.
const Version = "0.3.0"
