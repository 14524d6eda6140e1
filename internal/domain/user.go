package domain

// Credentials is the token pair returned by the token endpoint
type Credentials struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Well-known keys of the persisted client state
const (
	KeyAccessToken      = "accessToken"
	KeyRefreshToken     = "refreshToken"
	KeyLastDictionaryID = "lastDictionaryId"
)

// UserState represents user's current interaction state in the bot
type UserState string

const (
	StateIdle               UserState = "idle"
	StateWaitingUsername    UserState = "waiting_username"
	StateWaitingPassword    UserState = "waiting_password"
	StateWaitingWord        UserState = "waiting_word"
	StateWaitingTranslation UserState = "waiting_translation"
	StateWaitingDictionary  UserState = "waiting_dictionary"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State       UserState
	Username    string
	Register    bool
	CurrentWord string
}
