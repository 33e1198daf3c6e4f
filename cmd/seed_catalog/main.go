// seed_catalog genera un script SQL para poblar el catálogo inicial de repuestos
// a partir de un XML de catálogo de fabricante (habitualmente codificado en ISO-8859-1).
//
// Formato esperado:
//
//	<catalogo>
//	  <repuesto numero="AF-HD-001" nombre="..." categoria="Filtros" precio="45.99" minimo="10">
//	    <descripcion>...</descripcion>
//	  </repuesto>
//	</catalogo>
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.xml]
// Por defecto busca catalogo.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogo struct {
	Repuestos []repuesto `xml:"repuesto"`
}

type repuesto struct {
	Numero      string `xml:"numero,attr"`
	Nombre      string `xml:"nombre,attr"`
	Categoria   string `xml:"categoria,attr"`
	Precio      string `xml:"precio,attr"`
	Minimo      string `xml:"minimo,attr"`
	Descripcion string `xml:"descripcion"`
}

func main() {
	xmlPath := "catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var cat catalogo
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&cat); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	// Categorías únicas mencionadas por el catálogo
	catSet := make(map[string]struct{})
	var parts []repuesto
	for _, r := range cat.Repuestos {
		if r.Numero == "" || r.Nombre == "" {
			continue
		}
		if r.Categoria != "" {
			catSet[strings.TrimSpace(r.Categoria)] = struct{}{}
		}
		parts = append(parts, r)
	}

	var catNames []string
	for n := range catSet {
		catNames = append(catNames, n)
	}
	sort.Strings(catNames)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Catálogo inicial de repuestos\n-- Generado desde %s\n\n", filepath.Base(xmlPath))

	out.WriteString("-- 1. Categorías\n")
	for _, n := range catNames {
		fmt.Fprintf(out, "INSERT INTO categories (id, name)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid()::text, '%s')\n", escapeSQL(n))
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}
	out.WriteString("\n-- 2. Repuestos (existencia inicial cero)\n")
	for _, r := range parts {
		precio := strings.TrimSpace(r.Precio)
		if precio == "" {
			precio = "0"
		}
		minimo := strings.TrimSpace(r.Minimo)
		if minimo == "" {
			minimo = "0"
		}
		fmt.Fprintf(out, "INSERT INTO parts (id, part_number, name, description, category_id, quantity, minimum_stock, unit_price)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid()::text, '%s', '%s', '%s', c.id, 0, %s, %s\n",
			escapeSQL(strings.TrimSpace(r.Numero)), escapeSQL(strings.TrimSpace(r.Nombre)),
			escapeSQL(strings.TrimSpace(r.Descripcion)), minimo, precio)
		fmt.Fprintf(out, "FROM categories c WHERE c.name = '%s'\n", escapeSQL(strings.TrimSpace(r.Categoria)))
		out.WriteString("ON CONFLICT (part_number) DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d categorías, %d repuestos\n", outPath, len(catNames), len(parts))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
