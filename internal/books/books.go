// Package books holds the canonical book table for the KJV source:
// OSIS IDs, display names, canonical order, and chapter counts.
package books

// Testament identifies which canon division a book belongs to.
type Testament string

const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Book holds metadata for a single canonical book.
type Book struct {
	ID        string // OSIS book ID, e.g. "Gen"
	Name      string // display name, e.g. "Genesis"
	Order     int    // 1-based canonical position
	Chapters  int
	Testament Testament
}

// canon lists the 66 books of the KJV canon in canonical order.
var canon = []Book{
	{"Gen", "Genesis", 1, 50, OldTestament},
	{"Exod", "Exodus", 2, 40, OldTestament},
	{"Lev", "Leviticus", 3, 27, OldTestament},
	{"Num", "Numbers", 4, 36, OldTestament},
	{"Deut", "Deuteronomy", 5, 34, OldTestament},
	{"Josh", "Joshua", 6, 24, OldTestament},
	{"Judg", "Judges", 7, 21, OldTestament},
	{"Ruth", "Ruth", 8, 4, OldTestament},
	{"1Sam", "1 Samuel", 9, 31, OldTestament},
	{"2Sam", "2 Samuel", 10, 24, OldTestament},
	{"1Kgs", "1 Kings", 11, 22, OldTestament},
	{"2Kgs", "2 Kings", 12, 25, OldTestament},
	{"1Chr", "1 Chronicles", 13, 29, OldTestament},
	{"2Chr", "2 Chronicles", 14, 36, OldTestament},
	{"Ezra", "Ezra", 15, 10, OldTestament},
	{"Neh", "Nehemiah", 16, 13, OldTestament},
	{"Esth", "Esther", 17, 10, OldTestament},
	{"Job", "Job", 18, 42, OldTestament},
	{"Ps", "Psalms", 19, 150, OldTestament},
	{"Prov", "Proverbs", 20, 31, OldTestament},
	{"Eccl", "Ecclesiastes", 21, 12, OldTestament},
	{"Song", "Song of Solomon", 22, 8, OldTestament},
	{"Isa", "Isaiah", 23, 66, OldTestament},
	{"Jer", "Jeremiah", 24, 52, OldTestament},
	{"Lam", "Lamentations", 25, 5, OldTestament},
	{"Ezek", "Ezekiel", 26, 48, OldTestament},
	{"Dan", "Daniel", 27, 12, OldTestament},
	{"Hos", "Hosea", 28, 14, OldTestament},
	{"Joel", "Joel", 29, 3, OldTestament},
	{"Amos", "Amos", 30, 9, OldTestament},
	{"Obad", "Obadiah", 31, 1, OldTestament},
	{"Jonah", "Jonah", 32, 4, OldTestament},
	{"Mic", "Micah", 33, 7, OldTestament},
	{"Nah", "Nahum", 34, 3, OldTestament},
	{"Hab", "Habakkuk", 35, 3, OldTestament},
	{"Zeph", "Zephaniah", 36, 3, OldTestament},
	{"Hag", "Haggai", 37, 2, OldTestament},
	{"Zech", "Zechariah", 38, 14, OldTestament},
	{"Mal", "Malachi", 39, 4, OldTestament},
	{"Matt", "Matthew", 40, 28, NewTestament},
	{"Mark", "Mark", 41, 16, NewTestament},
	{"Luke", "Luke", 42, 24, NewTestament},
	{"John", "John", 43, 21, NewTestament},
	{"Acts", "Acts", 44, 28, NewTestament},
	{"Rom", "Romans", 45, 16, NewTestament},
	{"1Cor", "1 Corinthians", 46, 16, NewTestament},
	{"2Cor", "2 Corinthians", 47, 13, NewTestament},
	{"Gal", "Galatians", 48, 6, NewTestament},
	{"Eph", "Ephesians", 49, 6, NewTestament},
	{"Phil", "Philippians", 50, 4, NewTestament},
	{"Col", "Colossians", 51, 4, NewTestament},
	{"1Thess", "1 Thessalonians", 52, 5, NewTestament},
	{"2Thess", "2 Thessalonians", 53, 3, NewTestament},
	{"1Tim", "1 Timothy", 54, 6, NewTestament},
	{"2Tim", "2 Timothy", 55, 4, NewTestament},
	{"Titus", "Titus", 56, 3, NewTestament},
	{"Phlm", "Philemon", 57, 1, NewTestament},
	{"Heb", "Hebrews", 58, 13, NewTestament},
	{"Jas", "James", 59, 5, NewTestament},
	{"1Pet", "1 Peter", 60, 5, NewTestament},
	{"2Pet", "2 Peter", 61, 3, NewTestament},
	{"1John", "1 John", 62, 5, NewTestament},
	{"2John", "2 John", 63, 1, NewTestament},
	{"3John", "3 John", 64, 1, NewTestament},
	{"Jude", "Jude", 65, 1, NewTestament},
	{"Rev", "Revelation", 66, 22, NewTestament},
}

var byID = func() map[string]Book {
	m := make(map[string]Book, len(canon))
	for _, b := range canon {
		m[b.ID] = b
	}
	return m
}()

// ByID looks up a book by its OSIS ID.
func ByID(id string) (Book, bool) {
	b, ok := byID[id]
	return b, ok
}

// IsValidID reports whether id is a canonical OSIS book ID.
func IsValidID(id string) bool {
	_, ok := byID[id]
	return ok
}

// InOrder returns all books in canonical order.
func InOrder() []Book {
	out := make([]Book, len(canon))
	copy(out, canon)
	return out
}

// Count is the number of books in the canon.
const Count = 66
