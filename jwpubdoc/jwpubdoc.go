// Package jwpubdoc opens a JWPUB publication's embedded content database
// and yields parsed, decrypted HTML documents from it (spec §4.4).
package jwpubdoc

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jwsched/parser/internal/sqlitedrv"
	"github.com/jwsched/parser/internal/xerrors"
	"github.com/jwsched/parser/jwpubcrypto"
	"github.com/jwsched/parser/ziparchive"
)

// innerContentsEntry is the fixed inner archive member name containing the
// per-document content store (spec §6 Embedded format constants).
const innerContentsEntry = "contents"

const (
	classMWBWeek      = 106
	classWatchtowerTOC = 68
	classWatchtowerArticle = 40
)

// Store is an open accessor over one JWPUB issue's embedded database.
// Callers must call Close to release the temp file backing the database.
type Store struct {
	handle *sqlitedrv.TempHandle
	km     jwpubcrypto.KeyMaterial
}

// Open unpacks outerZip (a JWPUB archive already read by ziparchive),
// locates its inner "contents" archive and embedded .db file, and derives
// the publication's key material from its Publication row.
func Open(outerZip ziparchive.Archive, limits ziparchive.Limits) (*Store, error) {
	contentsBytes, ok := outerZip[innerContentsEntry]
	if !ok {
		return nil, xerrors.Newf(xerrors.InvalidArchive, "jwpub archive has no %q entry", innerContentsEntry)
	}

	inner, err := ziparchive.Read(contentsBytes, limits)
	if err != nil {
		return nil, err
	}

	var dbBytes []byte
	var dbFound bool
	for name, data := range inner {
		if strings.HasSuffix(strings.ToLower(name), ".db") {
			dbBytes, dbFound = data, true
			break
		}
	}
	if !dbFound {
		return nil, xerrors.New(xerrors.InvalidDatabase, "no .db entry found in jwpub contents archive")
	}

	handle, err := sqlitedrv.OpenFromBytes(dbBytes, "jwpub-*.db")
	if err != nil {
		return nil, xerrors.Wrap(xerrors.IOError, err, "materializing embedded database")
	}

	identity, err := readPublicationIdentity(handle)
	if err != nil {
		handle.Close()
		return nil, err
	}

	return &Store{handle: handle, km: jwpubcrypto.Derive(identity)}, nil
}

// Close releases the database handle and its backing temp file.
func (s *Store) Close() error {
	return s.handle.Close()
}

func readPublicationIdentity(h *sqlitedrv.TempHandle) (jwpubcrypto.PublicationIdentity, error) {
	row := h.DB.QueryRow(`SELECT MepsLanguageIndex, Symbol, Year, IssueTagNumber FROM Publication LIMIT 1`)

	var id jwpubcrypto.PublicationIdentity
	if err := row.Scan(&id.MepsLanguageIndex, &id.Symbol, &id.Year, &id.IssueTagNumber); err != nil {
		return jwpubcrypto.PublicationIdentity{}, xerrors.Wrap(xerrors.InvalidDatabase, err, "reading Publication row")
	}
	return id, nil
}

// decryptDocument decrypts and parses one Content blob, stripping ruby text
// per spec §4.4.
func (s *Store) decryptDocument(content []byte) (*goquery.Document, error) {
	text, err := jwpubcrypto.DecryptInflate(s.km, content)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, xerrors.Wrap(xerrors.MalformedContent, err, "parsing decrypted document as HTML")
	}
	doc.Find("rt").Remove()
	return doc, nil
}

// MWBWeeks returns every class-106 MWB week document in natural row order.
func (s *Store) MWBWeeks() ([]*goquery.Document, error) {
	rows, err := s.handle.DB.Query(`SELECT Content FROM Document WHERE Class = ?`, classMWBWeek)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.InvalidDatabase, err, "querying mwb week documents")
	}
	defer rows.Close()

	var docs []*goquery.Document
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, xerrors.Wrap(xerrors.InvalidDatabase, err, "scanning mwb week row")
		}
		doc, err := s.decryptDocument(content)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Wrap(xerrors.InvalidDatabase, err, "iterating mwb week documents")
	}
	return docs, nil
}

// WatchtowerTOC returns the single class-68 table-of-contents document.
// More than one matching row is MALFORMED_CONTENT (spec §4.5); zero rows
// returns a nil document with no error, left to the caller to treat as an
// empty result.
func (s *Store) WatchtowerTOC() (*goquery.Document, error) {
	rows, err := s.handle.DB.Query(`SELECT Content FROM Document WHERE Class = ?`, classWatchtowerTOC)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.InvalidDatabase, err, "querying watchtower toc")
	}
	defer rows.Close()

	var content []byte
	found := 0
	for rows.Next() {
		found++
		if found > 1 {
			continue
		}
		if err := rows.Scan(&content); err != nil {
			return nil, xerrors.Wrap(xerrors.InvalidDatabase, err, "scanning watchtower toc row")
		}
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Wrap(xerrors.InvalidDatabase, err, "iterating watchtower toc rows")
	}
	if found > 1 {
		return nil, xerrors.Newf(xerrors.MalformedContent, "found %d watchtower toc documents, expected at most 1", found)
	}
	if found == 0 {
		return nil, nil
	}
	return s.decryptDocument(content)
}

// WatchtowerArticleByID returns the class-40 study article whose
// MepsDocumentId matches id.
func (s *Store) WatchtowerArticleByID(id int) (*goquery.Document, bool, error) {
	row := s.handle.DB.QueryRow(`SELECT Content FROM Document WHERE Class = ? AND MepsDocumentId = ?`, classWatchtowerArticle, id)

	var content []byte
	if err := row.Scan(&content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, xerrors.Wrap(xerrors.InvalidDatabase, err, "scanning watchtower article row")
	}
	doc, err := s.decryptDocument(content)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}
