package mwsql

// Babel represents a row of the Babel extension's babel table.
type Babel struct {
	User  UserId
	Lang  string
	Level string
}

// ParseBabel parses one tuple of the babel table's INSERT statement.
func ParseBabel(buf []byte, pos int) (int, Babel, *ParseError) {
	return parseRowTuple(buf, pos, "row of babel table", func(buf []byte, pos int) (int, Babel, *ParseError) {
		var r Babel
		var err *ParseError
		pos, r.User, err = field(buf, pos, "the field “user”", ParseUserId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Lang, err = field(buf, pos, "the field “lang”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Level, err = lastField(buf, pos, "the field “level”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// ChangeTag represents a row of the change_tag table.
type ChangeTag struct {
	Id             ChangeTagId
	RecentChangeId Optional[RecentChangeId]
	LogId          Optional[LogId]
	RevisionId     Optional[RevisionId]
	Params         Optional[string]
	TagId          ChangeTagDefinitionId
}

// ParseChangeTag parses one tuple of the change_tag table's INSERT statement.
func ParseChangeTag(buf []byte, pos int) (int, ChangeTag, *ParseError) {
	return parseRowTuple(buf, pos, "row of change_tag table", func(buf []byte, pos int) (int, ChangeTag, *ParseError) {
		var r ChangeTag
		var err *ParseError
		pos, r.Id, err = field(buf, pos, "the field “id”", ParseChangeTagId)
		if err != nil {
			return pos, r, err
		}
		pos, r.RecentChangeId, err = field(buf, pos, "the field “rc_id”", func(b []byte, p int) (int, Optional[RecentChangeId], *ParseError) {
			return ParseOptional(b, p, ParseRecentChangeId)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.LogId, err = field(buf, pos, "the field “log_id”", func(b []byte, p int) (int, Optional[LogId], *ParseError) {
			return ParseOptional(b, p, ParseLogId)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.RevisionId, err = field(buf, pos, "the field “rev_id”", func(b []byte, p int) (int, Optional[RevisionId], *ParseError) {
			return ParseOptional(b, p, ParseRevisionId)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.Params, err = field(buf, pos, "the field “params”", func(b []byte, p int) (int, Optional[string], *ParseError) {
			return ParseOptional(b, p, ParseUTF8String)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.TagId, err = lastField(buf, pos, "the field “tag_id”", ParseChangeTagDefinitionId)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// ChangeTagDefinition represents a row of the change_tag_def table.
type ChangeTagDefinition struct {
	Id          ChangeTagDefinitionId
	Name        string
	UserDefined bool
	Count       uint64
}

// ParseChangeTagDefinition parses one tuple of the change_tag_def
// table's INSERT statement.
func ParseChangeTagDefinition(buf []byte, pos int) (int, ChangeTagDefinition, *ParseError) {
	return parseRowTuple(buf, pos, "row of change_tag_def table", func(buf []byte, pos int) (int, ChangeTagDefinition, *ParseError) {
		var r ChangeTagDefinition
		var err *ParseError
		pos, r.Id, err = field(buf, pos, "the field “id”", ParseChangeTagDefinitionId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Name, err = field(buf, pos, "the field “name”", ParseUTF8String)
		if err != nil {
			return pos, r, err
		}
		pos, r.UserDefined, err = field(buf, pos, "the field “user_defined”", ParseBool)
		if err != nil {
			return pos, r, err
		}
		pos, r.Count, err = lastField(buf, pos, "the field “count”", ParseUint64)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// UserFormerGroupMembership represents a row of the user_former_groups table.
type UserFormerGroupMembership struct {
	User  UserId
	Group UserGroup
}

// ParseUserFormerGroupMembership parses one tuple of the
// user_former_groups table's INSERT statement.
func ParseUserFormerGroupMembership(buf []byte, pos int) (int, UserFormerGroupMembership, *ParseError) {
	return parseRowTuple(buf, pos, "row of user_former_groups table", func(buf []byte, pos int) (int, UserFormerGroupMembership, *ParseError) {
		var r UserFormerGroupMembership
		var err *ParseError
		pos, r.User, err = field(buf, pos, "the field “user”", ParseUserId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Group, err = lastField(buf, pos, "the field “group”", ParseUserGroup)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// UserGroupMembership represents a row of the user_groups table.
type UserGroupMembership struct {
	User   UserId
	Group  UserGroup
	Expiry Optional[Expiry]
}

// ParseUserGroupMembership parses one tuple of the user_groups table's
// INSERT statement.
func ParseUserGroupMembership(buf []byte, pos int) (int, UserGroupMembership, *ParseError) {
	return parseRowTuple(buf, pos, "row of user_groups table", func(buf []byte, pos int) (int, UserGroupMembership, *ParseError) {
		var r UserGroupMembership
		var err *ParseError
		pos, r.User, err = field(buf, pos, "the field “user”", ParseUserId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Group, err = field(buf, pos, "the field “group”", ParseUserGroup)
		if err != nil {
			return pos, r, err
		}
		pos, r.Expiry, err = lastField(buf, pos, "the field “expiry”", func(b []byte, p int) (int, Optional[Expiry], *ParseError) {
			return ParseOptional(b, p, ParseExpiry)
		})
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// WikibaseClientEntityUsage represents a row of the Wikibase Client
// extension's wbc_entity_usage table.
type WikibaseClientEntityUsage struct {
	RowId    uint64
	EntityId string
	Aspect   string
	PageId   PageId
}

// ParseWikibaseClientEntityUsage parses one tuple of the
// wbc_entity_usage table's INSERT statement.
func ParseWikibaseClientEntityUsage(buf []byte, pos int) (int, WikibaseClientEntityUsage, *ParseError) {
	return parseRowTuple(buf, pos, "row of wbc_entity_usage table", func(buf []byte, pos int) (int, WikibaseClientEntityUsage, *ParseError) {
		var r WikibaseClientEntityUsage
		var err *ParseError
		pos, r.RowId, err = field(buf, pos, "the field “row_id”", ParseUint64)
		if err != nil {
			return pos, r, err
		}
		pos, r.EntityId, err = field(buf, pos, "the field “entity_id”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Aspect, err = field(buf, pos, "the field “aspect”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.PageId, err = lastField(buf, pos, "the field “page_id”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}
