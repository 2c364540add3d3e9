package mwsql

// PageId is the primary key of the page table (page.page_id and every
// foreign key that references it).
type PageId uint32

// PageNamespace is a MediaWiki namespace number. Negative values are
// valid (-1 is Special, -2 is Media).
type PageNamespace int32

// CategoryId is the primary key of the category table.
type CategoryId uint32

// LogId is the primary key of the logging table.
type LogId uint32

// RevisionId is the primary key of the revision table.
type RevisionId uint32

// CommentId is the primary key of the comment table.
type CommentId uint32

// ActorId is the primary key of the actor table.
type ActorId uint32

// UserId is the primary key of the user table. Zero means an
// unregistered/anonymous user.
type UserId uint32

// RecentChangeId is the primary key of the recentchanges table.
type RecentChangeId uint32

// ChangeTagId is the primary key of the change_tag table.
type ChangeTagId uint32

// ChangeTagDefinitionId is the primary key of the change_tag_def table.
type ChangeTagDefinitionId uint32

// ExternalLinkId is the primary key of the externallinks table.
type ExternalLinkId uint32

// PageRestrictionId is the primary key of the page_restrictions table.
type PageRestrictionId uint32

// LinkTargetId is the primary key of the linktarget table. Not present
// in the original_source/ field-type catalog; added here
// following the same wrapper pattern as the other ID types because
// TemplateLink.TargetId needs it.
type LinkTargetId uint32

// PageCount is category.cat_pages/cat_subcats/cat_files: logically
// non-negative, but stored signed because MediaWiki has historically
// allowed it to go negative through counter-maintenance bugs.
type PageCount int32

// PageTitle is a MediaWiki page title with spaces rendered as
// underscores and without its namespace prefix, e.g. "K篤_Tower".
// Stored as a distinct string type so that a PageTitle is never
// accidentally compared against or concatenated with a FullPageTitle.
type PageTitle string

// FullPageTitle is a page title together with its namespace prefix,
// e.g. "Talk:K篤_Tower".
type FullPageTitle string

// Sha1 is the base-36 encoding MediaWiki uses for SHA-1 content hashes
// (revision.rev_sha1 and similar columns), distinct from hex.
type Sha1 string

// MinorMime is the subtype half of a MIME type (the part after the
// slash), as stored in the image/oldimage tables' img_minor_mime column.
type MinorMime string

// UserGroup is the name of a user group such as "sysop" or "bot".
type UserGroup string

func parseUint32Wrapper(buf []byte, pos int) (int, uint32, *ParseError) {
	return ParseUint32(buf, pos)
}

// ParsePageId parses an unsigned 32-bit page.page_id value.
func ParsePageId(buf []byte, pos int) (int, PageId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, PageId(v), err
}

// ParsePageNamespace parses a signed 32-bit namespace number.
func ParsePageNamespace(buf []byte, pos int) (int, PageNamespace, *ParseError) {
	end, v, err := ParseInt32(buf, pos)
	return end, PageNamespace(v), err
}

// ParseCategoryId parses an unsigned 32-bit category.cat_id value.
func ParseCategoryId(buf []byte, pos int) (int, CategoryId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, CategoryId(v), err
}

// ParseLogId parses an unsigned 32-bit logging.log_id value.
func ParseLogId(buf []byte, pos int) (int, LogId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, LogId(v), err
}

// ParseRevisionId parses an unsigned 32-bit revision.rev_id value.
func ParseRevisionId(buf []byte, pos int) (int, RevisionId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, RevisionId(v), err
}

// ParseCommentId parses an unsigned 32-bit comment.comment_id value.
func ParseCommentId(buf []byte, pos int) (int, CommentId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, CommentId(v), err
}

// ParseActorId parses an unsigned 32-bit actor.actor_id value.
func ParseActorId(buf []byte, pos int) (int, ActorId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, ActorId(v), err
}

// ParseUserId parses an unsigned 32-bit user.user_id value.
func ParseUserId(buf []byte, pos int) (int, UserId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, UserId(v), err
}

// ParseRecentChangeId parses an unsigned 32-bit recentchanges.rc_id value.
func ParseRecentChangeId(buf []byte, pos int) (int, RecentChangeId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, RecentChangeId(v), err
}

// ParseChangeTagId parses an unsigned 32-bit change_tag.ct_id value.
func ParseChangeTagId(buf []byte, pos int) (int, ChangeTagId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, ChangeTagId(v), err
}

// ParseChangeTagDefinitionId parses an unsigned 32-bit change_tag_def.ctd_id value.
func ParseChangeTagDefinitionId(buf []byte, pos int) (int, ChangeTagDefinitionId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, ChangeTagDefinitionId(v), err
}

// ParseExternalLinkId parses an unsigned 32-bit externallinks.el_id value.
func ParseExternalLinkId(buf []byte, pos int) (int, ExternalLinkId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, ExternalLinkId(v), err
}

// ParsePageRestrictionId parses an unsigned 32-bit page_restrictions.pr_id value.
func ParsePageRestrictionId(buf []byte, pos int) (int, PageRestrictionId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, PageRestrictionId(v), err
}

// ParseLinkTargetId parses an unsigned 32-bit linktarget.lt_id value.
func ParseLinkTargetId(buf []byte, pos int) (int, LinkTargetId, *ParseError) {
	end, v, err := parseUint32Wrapper(buf, pos)
	return end, LinkTargetId(v), err
}

// ParsePageCount parses a signed 32-bit counter value.
func ParsePageCount(buf []byte, pos int) (int, PageCount, *ParseError) {
	end, v, err := ParseInt32(buf, pos)
	return end, PageCount(v), err
}

// ParsePageTitle parses the escaped UTF-8 string stored in columns such
// as page.page_title.
func ParsePageTitle(buf []byte, pos int) (int, PageTitle, *ParseError) {
	end, s, err := ParseUTF8String(buf, pos)
	return end, PageTitle(s), err
}

// ParseFullPageTitle parses the escaped UTF-8 string stored in title
// columns that already carry a namespace prefix, such as
// langlinks.ll_title.
func ParseFullPageTitle(buf []byte, pos int) (int, FullPageTitle, *ParseError) {
	end, s, err := ParseUTF8String(buf, pos)
	return end, FullPageTitle(s), err
}

// ParseSha1 parses the raw (non-escaped) base-36 hash stored in columns
// such as image.img_sha1. It is zero-copy: the returned Sha1 aliases
// buf, so buf must outlive it.
func ParseSha1(buf []byte, pos int) (int, Sha1, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	return end, Sha1(s), err
}

// ParseMinorMime parses the raw MIME subtype stored in columns such as
// image.img_minor_mime.
func ParseMinorMime(buf []byte, pos int) (int, MinorMime, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	return end, MinorMime(s), err
}

// ParseUserGroup parses the raw (unescaped) string stored in
// user_groups.ug_group.
func ParseUserGroup(buf []byte, pos int) (int, UserGroup, *ParseError) {
	end, s, err := ParseRawString(buf, pos)
	return end, UserGroup(s), err
}
