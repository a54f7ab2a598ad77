package template

// DefaultWrapper is the document produced for URL sources: a full-viewport
// iframe pointing at {{url}}.
const DefaultWrapper = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{title}}</title>
{{icon}}    <style>
        body, html { margin: 0; padding: 0; height: 100%; overflow: hidden; }
        iframe { width: 100%; height: 100%; border: none; display: block; }
    </style>
</head>
<body>
    <iframe src="{{url}}"></iframe>
</body>
</html>
`

// DefaultShell wraps a document that has no </head> so an ad script can be
// placed in a head. {{body}} is the original document, untouched.
const DefaultShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{title}}</title>
{{script}}
</head>
<body>
{{body}}
</body>
</html>
`
