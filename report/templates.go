package report

import "html/template"

var barChartTemplate = template.Must(template.New("barchart").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>US Presidential Election Analysis</title>
    <script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
    <style>
        body { font-family: Arial, sans-serif; margin: 0 auto; max-width: 1100px; padding: 20px; background: #f5f5f5; }
        h1 { text-align: center; }
        .subtitle { text-align: center; color: #666; }
        .plot-container { background: #fff; border-radius: 6px; box-shadow: 0 1px 3px rgba(0,0,0,0.15); margin: 24px 0; padding: 12px; }
    </style>
</head>
<body>
    <h1>US Presidential Election Analysis</h1>
    <p class="subtitle">Years analyzed: {{.YearsAnalyzed}}</p>

    <div class="plot-container">
        <div id="national-plot" style="height:450px;"></div>
    </div>

    {{range .States}}
    <div class="plot-container">
        <div id="state-{{.ID}}" style="height:350px;"></div>
    </div>
    {{end}}

    <script>
    var national = {{.National}};
    Plotly.newPlot("national-plot", [
        { x: national.years, y: national.dem, name: "Democratic", type: "bar", marker: { color: "#3b6fb6" } },
        { x: national.years, y: national.rep, name: "Republican", type: "bar", marker: { color: "#c23b3b" } }
    ], {
        title: "National Popular Vote Share by Year",
        yaxis: { title: "Share of two-party vote (%)", range: [0, 100] },
        xaxis: { title: "Election year", type: "category" },
        barmode: "group"
    });

    var states = {{.States}};
    states.forEach(function (s) {
        Plotly.newPlot("state-" + s.id, [
            { x: s.years, y: s.dem, name: "Democratic", type: "bar", marker: { color: "#3b6fb6" } },
            { x: s.years, y: s.rep, name: "Republican", type: "bar", marker: { color: "#c23b3b" } }
        ], {
            title: s.name,
            yaxis: { title: "Vote percentage", range: [0, 100] },
            xaxis: { type: "category" },
            barmode: "group"
        });
    });
    </script>
</body>
</html>
`))

var mapsTemplate = template.Must(template.New("maps").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>US Presidential Election Maps</title>
    <script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
    <style>
        body { font-family: Arial, sans-serif; margin: 0 auto; max-width: 1100px; padding: 20px; background: #f5f5f5; }
        h1 { text-align: center; }
        .subtitle { text-align: center; color: #666; }
        .selector { text-align: center; margin: 16px 0; }
        .map-container { background: #fff; border-radius: 6px; box-shadow: 0 1px 3px rgba(0,0,0,0.15); padding: 12px; }
    </style>
</head>
<body>
    <h1>Electoral Map by Year</h1>
    <p class="subtitle">Years analyzed: {{.YearsAnalyzed}}</p>

    <div class="selector">
        <label for="year-select">Election year:</label>
        <select id="year-select">
            {{range .Maps}}<option value="{{.Year}}">{{.Year}}</option>{{end}}
        </select>
    </div>

    <div class="map-container">
        <div id="map-plot" style="height:600px;"></div>
    </div>

    <script>
    var maps = {{.Maps}};

    function drawMap(yearMap) {
        var locations = yearMap.dem.concat(yearMap.rep);
        var z = yearMap.dem.map(function () { return 0; })
            .concat(yearMap.rep.map(function () { return 1; }));
        Plotly.newPlot("map-plot", [{
            type: "choropleth",
            locationmode: "USA-states",
            locations: locations,
            z: z,
            zmin: 0,
            zmax: 1,
            colorscale: [[0, "#3b6fb6"], [1, "#c23b3b"]],
            showscale: false
        }], {
            title: yearMap.year + " Presidential Election",
            geo: { scope: "usa" }
        });
    }

    var select = document.getElementById("year-select");
    select.addEventListener("change", function () {
        var year = parseInt(select.value, 10);
        var m = maps.find(function (mm) { return mm.year === year; });
        if (m) drawMap(m);
    });

    if (maps.length > 0) {
        select.value = String(maps[maps.length - 1].year);
        drawMap(maps[maps.length - 1]);
    }
    </script>
</body>
</html>
`))
