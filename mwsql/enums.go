package mwsql

// PageType distinguishes the three kinds of entry the old
// categorylinks.cl_type column can hold. Closed: an unrecognized value
// is a hard parse error rather than falling back to an Other case,
// because MediaWiki itself treats this column as a fixed MySQL ENUM.
type PageType uint8

const (
	PageTypePage PageType = iota
	PageTypeSubcat
	PageTypeFile
)

func (t PageType) String() string {
	switch t {
	case PageTypeSubcat:
		return "subcat"
	case PageTypeFile:
		return "file"
	default:
		return "page"
	}
}

func parsePageTypeStr(buf []byte, pos int, s string) (PageType, *ParseError) {
	switch s {
	case "page":
		return PageTypePage, nil
	case "subcat":
		return PageTypeSubcat, nil
	case "file":
		return PageTypeFile, nil
	default:
		return 0, withContext(kindError(buf, pos, "verify"), pos, "PageType")
	}
}

// ParsePageType parses the raw (unescaped) string stored in
// categorylinks.cl_type.
func ParsePageType(buf []byte, pos int) (int, PageType, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	if err != nil {
		return end, 0, withContext(err, pos, "PageType")
	}
	v, perr := parsePageTypeStr(buf, pos, s)
	if perr != nil {
		return pos, 0, perr
	}
	return end, v, nil
}

// openEnum is the shared representation of every open enumeration in
// this package: a small set of well-known values plus an Other(string)
// escape hatch for whatever a particular wiki configures beyond them.
type openEnum struct {
	known uint8
	other string
}

func (e openEnum) other_() (string, bool) {
	if e.known == 0 {
		return e.other, true
	}
	return "", false
}

// PageAction is the pr_type/page_restrictions action a protection entry
// applies to. Open because wikis can register custom actions beyond the
// ones MediaWiki ships with.
type PageAction struct{ openEnum }

const (
	pageActionOther uint8 = iota
	PageActionEdit
	PageActionMove
	PageActionReply
	PageActionUpload
	PageActionAll
)

func NewPageAction(k uint8) PageAction       { return PageAction{openEnum{known: k}} }
func OtherPageAction(s string) PageAction    { return PageAction{openEnum{known: pageActionOther, other: s}} }
func (a PageAction) Other() (string, bool)   { return a.other_() }

func (a PageAction) String() string {
	switch a.known {
	case PageActionEdit:
		return "edit"
	case PageActionMove:
		return "move"
	case PageActionReply:
		return "reply"
	case PageActionUpload:
		return "upload"
	case PageActionAll:
		return "all"
	default:
		return a.other
	}
}

func parsePageActionStr(s string) PageAction {
	switch s {
	case "edit":
		return NewPageAction(PageActionEdit)
	case "move":
		return NewPageAction(PageActionMove)
	case "reply":
		return NewPageAction(PageActionReply)
	case "upload":
		return NewPageAction(PageActionUpload)
	default:
		return OtherPageAction(s)
	}
}

// ProtectionLevel is the pr_level/page_restrictions user group required
// to perform a protected action. The empty string is a well-known value
// (ProtectionLevelNone), distinct from Other(""), matching
// 'move=:edit=' in the page_restrictions mini-language.
type ProtectionLevel struct{ openEnum }

const (
	protectionLevelOther uint8 = iota
	ProtectionLevelAutoconfirmed
	ProtectionLevelExtendedConfirmed
	ProtectionLevelSysop
	ProtectionLevelTemplateEditor
	ProtectionLevelEditProtected
	ProtectionLevelEditSemiProtected
	ProtectionLevelNone
)

func NewProtectionLevel(k uint8) ProtectionLevel { return ProtectionLevel{openEnum{known: k}} }
func OtherProtectionLevel(s string) ProtectionLevel {
	return ProtectionLevel{openEnum{known: protectionLevelOther, other: s}}
}
func (p ProtectionLevel) Other() (string, bool) { return p.other_() }

func (p ProtectionLevel) String() string {
	switch p.known {
	case ProtectionLevelAutoconfirmed:
		return "autoconfirmed"
	case ProtectionLevelExtendedConfirmed:
		return "extendedconfirmed"
	case ProtectionLevelSysop:
		return "sysop"
	case ProtectionLevelTemplateEditor:
		return "templateeditor"
	case ProtectionLevelEditProtected:
		return "editprotected"
	case ProtectionLevelEditSemiProtected:
		return "editsemiprotected"
	case ProtectionLevelNone:
		return ""
	default:
		return p.other
	}
}

func parseProtectionLevelStr(s string) ProtectionLevel {
	switch s {
	case "autoconfirmed":
		return NewProtectionLevel(ProtectionLevelAutoconfirmed)
	case "extendedconfirmed":
		return NewProtectionLevel(ProtectionLevelExtendedConfirmed)
	case "sysop":
		return NewProtectionLevel(ProtectionLevelSysop)
	case "templateeditor":
		return NewProtectionLevel(ProtectionLevelTemplateEditor)
	case "editprotected":
		return NewProtectionLevel(ProtectionLevelEditProtected)
	case "editsemiprotected":
		return NewProtectionLevel(ProtectionLevelEditSemiProtected)
	case "":
		return NewProtectionLevel(ProtectionLevelNone)
	default:
		return OtherProtectionLevel(s)
	}
}

// ContentModel names the serialization format of a revision's content,
// page.page_content_model. Open because extensions register their own
// content models (e.g. "GadgetDefinition").
type ContentModel struct{ openEnum }

const (
	contentModelOther uint8 = iota
	ContentModelWikitext
	ContentModelScribunto
	ContentModelText
	ContentModelCSS
	ContentModelSanitizedCSS
	ContentModelJavaScript
	ContentModelJSON
)

func NewContentModel(k uint8) ContentModel    { return ContentModel{openEnum{known: k}} }
func OtherContentModel(s string) ContentModel { return ContentModel{openEnum{known: contentModelOther, other: s}} }
func (m ContentModel) Other() (string, bool)  { return m.other_() }

func (m ContentModel) String() string {
	switch m.known {
	case ContentModelWikitext:
		return "wikitext"
	case ContentModelScribunto:
		return "Scribunto"
	case ContentModelText:
		return "text"
	case ContentModelCSS:
		return "css"
	case ContentModelSanitizedCSS:
		return "sanitized-css"
	case ContentModelJavaScript:
		return "javascript"
	case ContentModelJSON:
		return "json"
	default:
		return m.other
	}
}

func parseContentModelStr(s string) ContentModel {
	switch s {
	case "wikitext":
		return NewContentModel(ContentModelWikitext)
	case "Scribunto":
		return NewContentModel(ContentModelScribunto)
	case "text":
		return NewContentModel(ContentModelText)
	case "css":
		return NewContentModel(ContentModelCSS)
	case "sanitized-css":
		return NewContentModel(ContentModelSanitizedCSS)
	case "javascript":
		return NewContentModel(ContentModelJavaScript)
	case "json":
		return NewContentModel(ContentModelJSON)
	default:
		return OtherContentModel(s)
	}
}

// MediaType is the broad category of an uploaded file, image.img_media_type.
// Open because MediaWiki's MEDIATYPE_* constants can be extended by
// configuration or extensions.
type MediaType struct{ openEnum }

const (
	mediaTypeOther uint8 = iota
	MediaTypeUnknown
	MediaTypeBitmap
	MediaTypeDrawing
	MediaTypeAudio
	MediaTypeVideo
	MediaTypeMultimedia
	MediaTypeOffice
	MediaTypeText
	MediaTypeExecutable
	MediaTypeArchive
	MediaTypeThreeDimensional
)

func NewMediaType(k uint8) MediaType    { return MediaType{openEnum{known: k}} }
func OtherMediaType(s string) MediaType { return MediaType{openEnum{known: mediaTypeOther, other: s}} }
func (m MediaType) Other() (string, bool) { return m.other_() }

func (m MediaType) String() string {
	switch m.known {
	case MediaTypeUnknown:
		return "UNKNOWN"
	case MediaTypeBitmap:
		return "BITMAP"
	case MediaTypeDrawing:
		return "DRAWING"
	case MediaTypeAudio:
		return "AUDIO"
	case MediaTypeVideo:
		return "VIDEO"
	case MediaTypeMultimedia:
		return "MULTIMEDIA"
	case MediaTypeOffice:
		return "OFFICE"
	case MediaTypeText:
		return "TEXT"
	case MediaTypeExecutable:
		return "EXECUTABLE"
	case MediaTypeArchive:
		return "ARCHIVE"
	case MediaTypeThreeDimensional:
		return "3D"
	default:
		return m.other
	}
}

func parseMediaTypeStr(s string) MediaType {
	switch s {
	case "UNKNOWN":
		return NewMediaType(MediaTypeUnknown)
	case "BITMAP":
		return NewMediaType(MediaTypeBitmap)
	case "DRAWING":
		return NewMediaType(MediaTypeDrawing)
	case "AUDIO":
		return NewMediaType(MediaTypeAudio)
	case "VIDEO":
		return NewMediaType(MediaTypeVideo)
	case "MULTIMEDIA":
		return NewMediaType(MediaTypeMultimedia)
	case "OFFICE":
		return NewMediaType(MediaTypeOffice)
	case "TEXT":
		return NewMediaType(MediaTypeText)
	case "EXECUTABLE":
		return NewMediaType(MediaTypeExecutable)
	case "ARCHIVE":
		return NewMediaType(MediaTypeArchive)
	case "3D":
		return NewMediaType(MediaTypeThreeDimensional)
	default:
		return OtherMediaType(s)
	}
}

// MajorMime is the type half of a MIME type, image.img_major_mime. Open
// because that column is declared as a MySQL enum that wiki farms have
// been known to extend.
type MajorMime struct{ openEnum }

const (
	majorMimeOther uint8 = iota
	MajorMimeUnknown
	MajorMimeApplication
	MajorMimeAudio
	MajorMimeImage
	MajorMimeText
	MajorMimeVideo
	MajorMimeMessage
	MajorMimeModel
	MajorMimeMultipart
)

func NewMajorMime(k uint8) MajorMime    { return MajorMime{openEnum{known: k}} }
func OtherMajorMime(s string) MajorMime { return MajorMime{openEnum{known: majorMimeOther, other: s}} }
func (m MajorMime) Other() (string, bool) { return m.other_() }

func (m MajorMime) String() string {
	switch m.known {
	case MajorMimeUnknown:
		return "unknown"
	case MajorMimeApplication:
		return "application"
	case MajorMimeAudio:
		return "audio"
	case MajorMimeImage:
		return "image"
	case MajorMimeText:
		return "text"
	case MajorMimeVideo:
		return "video"
	case MajorMimeMessage:
		return "message"
	case MajorMimeModel:
		return "model"
	case MajorMimeMultipart:
		return "multipart"
	default:
		return m.other
	}
}

func parseMajorMimeStr(s string) MajorMime {
	switch s {
	case "unknown":
		return NewMajorMime(MajorMimeUnknown)
	case "application":
		return NewMajorMime(MajorMimeApplication)
	case "audio":
		return NewMajorMime(MajorMimeAudio)
	case "image":
		return NewMajorMime(MajorMimeImage)
	case "text":
		return NewMajorMime(MajorMimeText)
	case "video":
		return NewMajorMime(MajorMimeVideo)
	case "message":
		return NewMajorMime(MajorMimeMessage)
	case "model":
		return NewMajorMime(MajorMimeModel)
	case "multipart":
		return NewMajorMime(MajorMimeMultipart)
	default:
		return OtherMajorMime(s)
	}
}

// ParsePageAction parses the raw (unescaped) string stored in
// page_restrictions.pr_type.
func ParsePageAction(buf []byte, pos int) (int, PageAction, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	if err != nil {
		return end, PageAction{}, withContext(err, pos, "PageAction")
	}
	return end, parsePageActionStr(s), nil
}

// ParseProtectionLevel parses the raw (unescaped) string stored in
// page_restrictions.pr_level.
func ParseProtectionLevel(buf []byte, pos int) (int, ProtectionLevel, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	if err != nil {
		return end, ProtectionLevel{}, withContext(err, pos, "ProtectionLevel")
	}
	return end, parseProtectionLevelStr(s), nil
}

// ParseContentModel parses the raw (unescaped) string stored in
// page.page_content_model.
func ParseContentModel(buf []byte, pos int) (int, ContentModel, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	if err != nil {
		return end, ContentModel{}, withContext(err, pos, "ContentModel")
	}
	return end, parseContentModelStr(s), nil
}

// ParseMediaType parses the raw (unescaped) string stored in
// image.img_media_type.
func ParseMediaType(buf []byte, pos int) (int, MediaType, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	if err != nil {
		return end, MediaType{}, withContext(err, pos, "MediaType")
	}
	return end, parseMediaTypeStr(s), nil
}

// ParseMajorMime parses the raw (unescaped) string stored in
// image.img_major_mime.
func ParseMajorMime(buf []byte, pos int) (int, MajorMime, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	if err != nil {
		return end, MajorMime{}, withContext(err, pos, "MajorMime")
	}
	return end, parseMajorMimeStr(s), nil
}
