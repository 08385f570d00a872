package model

// RemoteRef tracks whether a locally visible row already exists in the
// automation backend. Activation creates the remote row and moves the ref
// to Saved; every later toggle is an update against the remembered id.
type RemoteRef struct {
	id    int64
	saved bool
}

func SavedRef(id int64) RemoteRef { return RemoteRef{id: id, saved: true} }

func UnsavedRef() RemoteRef { return RemoteRef{} }

// ID returns the remote identifier and whether the row has one yet.
func (r RemoteRef) ID() (int64, bool) { return r.id, r.saved }

type RowStatus string

const (
	StatusActive   RowStatus = "ACTIVE"
	StatusInactive RowStatus = "INACTIVE"
)

func (s RowStatus) Toggled() RowStatus {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

type SourceType string

const (
	SourceWebsite   SourceType = "WEBSITE"
	SourceNewspaper SourceType = "NEWSPAPER"
)

// CountrySourceBinding is one RSS source row of a country, merged from the
// legacy dashboard catalogue and the automation backend's saved rows. The
// row exists locally even before it has been persisted remotely.
type CountrySourceBinding struct {
	ID              int64      `json:"id"` // jarayid RSS source id (catalogue)
	Source          string     `json:"source"`
	NewsSource      string     `json:"news_source"`
	Status          RowStatus  `json:"status"`
	ArticleCount    int        `json:"article_count"`
	Sequence        int        `json:"sequence"`
	Type            SourceType `json:"type"`
	JoiningWords    *int64     `json:"joining_words"`
	IntroMusicPath  string     `json:"intro_music_path"`
	RssSourceID     int64      `json:"jarayid_rss_source_id"`
	Remote          RemoteRef  `json:"-"`
	RemoteID        *int64     `json:"source_id"` // serialized view of Remote
}

// SavedSource is the automation backend's persisted shape of a source row.
type SavedSource struct {
	ID              int64      `json:"id"`
	JarayidSourceID int64      `json:"jarayid_source_id"`
	Status          RowStatus  `json:"status"`
	ArticleCount    int        `json:"article_count"`
	Sequence        int        `json:"sequence"`
	Type            SourceType `json:"type"`
	JoiningWords    *int64     `json:"joining_words"`
	IntroMusicPath  string     `json:"intro_music_path"`
}

// SourcePayload is the backend-shaped row submitted on bulk save. Display
// fields and the local status flag are dropped; the local catalogue id is
// renamed to jarayid_source_id and the remote id takes the id slot.
type SourcePayload struct {
	ID               *int64     `json:"id"`
	JarayidSourceID  int64      `json:"jarayid_source_id"`
	JarayidCountryID int64      `json:"jarayid_country_id"`
	ArticleCount     int        `json:"article_count"`
	Sequence         int        `json:"sequence"`
	Type             SourceType `json:"type"`
	JoiningWords     *int64     `json:"joining_words"`
	IntroMusicPath   string     `json:"intro_music_path"`
	Operator         string     `json:"operator"`
}

// SourceEdit carries the editable cells of one source row as submitted
// from the sources table. Identity is the catalogue id; everything the
// operator cannot edit stays server-side.
type SourceEdit struct {
	ID             int64      `json:"id"`
	ArticleCount   int        `json:"article_count"`
	Sequence       int        `json:"sequence"`
	Type           SourceType `json:"type"`
	JoiningWords   *int64     `json:"joining_words"`
	IntroMusicPath string     `json:"intro_music_path"`
}

// CreateSourcePayload activates a source that has never been persisted.
type CreateSourcePayload struct {
	JarayidCountryID int64  `json:"jarayid_country_id"`
	JarayidSourceID  int64  `json:"jarayid_source_id"`
	Operator         string `json:"operator"`
}

// ToggleSourcePayload flips the status of an already persisted source.
type ToggleSourcePayload struct {
	JarayidRssSourceID int64     `json:"jarayid_rss_source_id"`
	Status             RowStatus `json:"status"`
	Operator           string    `json:"operator"`
}

// Country is the merged country row shown on the countries page: the
// reference catalogue joined with the automation backend's saved state.
type Country struct {
	ID          int64     `json:"id"`
	CountryName string    `json:"country_name"`
	Status      RowStatus `json:"status"`
	Type        string    `json:"type"`
	Remote      RemoteRef `json:"-"`
	RemoteID    *int64    `json:"country_info_id"`
}

// SavedCountry is the automation backend's persisted country row.
type SavedCountry struct {
	ID        int64     `json:"id"`
	CountryID int64     `json:"country_id"`
	Status    RowStatus `json:"status"`
	Type      string    `json:"type"`
}
