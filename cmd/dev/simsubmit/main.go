package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"time"

	"requestdesk/internal/request"
)

// sample holds a minimal valid submission per category.
var sample = map[request.Category]url.Values{
	request.CategoryEthics: {
		"requester":     {"Dupont Jean, Commercial"},
		"country":       {"France"},
		"clientPartner": {"OSI-2024"},
	},
	request.CategoryVisit: {
		"requester": {"@Marie Martin"},
		"date":      {"2025-10-01"},
		"timeStart": {"09:00"},
		"timeEnd":   {"11:00"},
	},
	request.CategoryTravel: {
		"requester":   {"@Pierre Durant"},
		"destination": {"Berlin, Allemagne"},
		"purpose":     {"Salon professionnel"},
		"startDate":   {"2025-10-01"},
		"endDate":     {"2025-10-03"},
	},
	request.CategoryPurchase: {
		"requester":  {"@Sophie Leroy"},
		"item":       {"Clavier"},
		"entity":     {"sahar"},
		"dateNeeded": {"2025-10-10"},
	},
}

func main() {
	var (
		baseURL  = flag.String("url", "", "server base url (defaults to http://localhost<HTTP_ADDR>)")
		category = flag.String("category", "travel", "ethics, visit, travel or purchase")
		set      = flag.String("set", "", "extra fields as a query string, e.g. budget=800&urgency=urgent")
		omit     = flag.String("omit", "", "comma-separated sample fields to leave empty")
	)
	flag.Parse()

	c, err := request.ParseCategory(*category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *baseURL == "" {
		httpAddr := os.Getenv("HTTP_ADDR")
		if httpAddr == "" {
			httpAddr = ":8081"
		}
		if httpAddr[0] == ':' {
			*baseURL = "http://localhost" + httpAddr
		} else {
			*baseURL = "http://" + httpAddr
		}
	}
	*baseURL = strings.TrimSuffix(*baseURL, "/")

	fields := url.Values{}
	for k, v := range sample[c] {
		fields[k] = v
	}
	if *set != "" {
		extra, err := url.ParseQuery(*set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse -set: %v\n", err)
			os.Exit(2)
		}
		for k, v := range extra {
			fields[k] = v
		}
	}
	for _, k := range strings.Split(*omit, ",") {
		if k = strings.TrimSpace(k); k != "" {
			fields.Set(k, "")
		}
	}

	jar, _ := cookiejar.New(nil)
	hc := &http.Client{Timeout: 10 * time.Second, Jar: jar}

	steps := []struct {
		name string
		path string
		body url.Values
	}{
		{"open", "/requests/" + string(c) + "/new", url.Values{}},
		{"submit", "/forms/" + string(c) + "/submit", fields},
	}

	if _, err := get(hc, *baseURL+"/"); err != nil {
		fmt.Fprintf(os.Stderr, "get /: %v\n", err)
		os.Exit(1)
	}
	var page string
	for _, s := range steps {
		resp, err := hc.PostForm(*baseURL+s.path, s.body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", s.name, err)
			os.Exit(1)
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("%s status=%d\n", s.name, resp.StatusCode)
		if resp.StatusCode != http.StatusOK {
			fmt.Println(string(b))
			os.Exit(1)
		}
		page = string(b)
	}

	view, err := pageView(page)
	if err != nil {
		fmt.Fprintf(os.Stderr, "submit: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("view=%s\n", view)

	switch {
	case view == request.ViewDashboard && strings.Contains(page, "Demande soumise"):
		fmt.Println("result=submitted")
	case view == request.FormView(c) && strings.Contains(page, "Champs requis manquants"):
		fmt.Println("result=missing-fields")
		os.Exit(1)
	default:
		fmt.Println("result=unknown")
		os.Exit(1)
	}
}

// pageView reads the data-view marker the server puts on <main>.
func pageView(page string) (request.View, error) {
	const marker = `data-view="`
	_, rest, ok := strings.Cut(page, marker)
	if !ok {
		return "", fmt.Errorf("page has no %s marker", marker)
	}
	raw, _, ok := strings.Cut(rest, `"`)
	if !ok {
		return "", fmt.Errorf("unterminated %s marker", marker)
	}
	return request.ParseView(raw)
}

func get(hc *http.Client, u string) (int, error) {
	resp, err := hc.Get(u)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
