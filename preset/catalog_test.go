package preset

import "testing"

func TestParseCatalogSkipsBadRows(t *testing.T) {
	data := []byte("name\tdescription\thex\n" +
		"ok\tfine\t0x1\n" +
		"short\tno value\n" +
		"bad\tnot hex\tzz\n")
	c, err := parseCatalog(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.all) != 1 || c.Lookup("ok") == nil {
		t.Fatalf("expected only the valid row, got %d presets", len(c.all))
	}
}

func TestParseCatalogRejects(t *testing.T) {
	cases := map[string]string{
		"duplicate": "name\tdescription\thex\na\tx\t0x1\na\ty\t0x2\n",
		"empty":     "name\tdescription\thex\n",
		"no name":   "name\tdescription\thex\n\tx\t0x1\n",
	}
	for label, data := range cases {
		if _, err := parseCatalog([]byte(data)); err == nil {
			t.Errorf("%s: expected error", label)
		}
	}
}
