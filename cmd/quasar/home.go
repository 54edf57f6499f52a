package main

// homePage is the single-page search front end served at /. It talks to
// /api/search and renders results client-side.
const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Quasar Search Engine</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .container { background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #333; text-align: center; margin-bottom: 30px; }
        .search-box { display: flex; margin-bottom: 20px; }
        #searchInput { flex: 1; padding: 12px; border: 2px solid #ddd; border-radius: 6px 0 0 6px; font-size: 16px; }
        #searchButton { padding: 12px 20px; background: #007bff; color: white; border: none; border-radius: 0 6px 6px 0; cursor: pointer; font-size: 16px; }
        #searchButton:hover { background: #0056b3; }
        .result { border: 1px solid #eee; border-radius: 6px; padding: 15px; margin-bottom: 15px; background: #fafafa; }
        .result-title { font-weight: bold; color: #1a0dab; margin-bottom: 5px; }
        .result-url { color: #006621; font-size: 14px; margin-bottom: 5px; }
        .result-content { color: #545454; font-size: 14px; }
        .result-score { color: #999; font-size: 12px; float: right; }
        .no-results { text-align: center; color: #666; padding: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Quasar Search</h1>
        <div class="search-box">
            <input type="text" id="searchInput" placeholder="Search documents..." autofocus>
            <button id="searchButton">Search</button>
        </div>
        <div id="results"></div>
    </div>
    <script>
        const input = document.getElementById('searchInput');
        const button = document.getElementById('searchButton');
        const resultsDiv = document.getElementById('results');

        async function search() {
            const query = input.value.trim();
            if (!query) return;
            const res = await fetch('/api/search?q=' + encodeURIComponent(query));
            const data = await res.json();
            if (data.count === 0) {
                resultsDiv.innerHTML = '<div class="no-results">No results found.</div>';
                return;
            }
            resultsDiv.innerHTML = data.results.map(r => {
                const doc = r.document;
                const url = doc.url ? '<div class="result-url">' + doc.url + '</div>' : '';
                return '<div class="result">' +
                    '<span class="result-score">Score: ' + r.score.toFixed(2) + '</span>' +
                    '<div class="result-title">' + doc.title + '</div>' + url +
                    '<div class="result-content">' + doc.content + '</div>' +
                '</div>';
            }).join('');
        }

        button.addEventListener('click', search);
        input.addEventListener('keydown', e => { if (e.key === 'Enter') search(); });
    </script>
</body>
</html>
`
